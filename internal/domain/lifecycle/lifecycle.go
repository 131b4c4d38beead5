// Package lifecycle holds shared application lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (DB ping, server drain).
const DefaultTimeout = 10 * time.Second

package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapConcurrent_PreservesOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	results := mapConcurrent(context.Background(), 8, items, func(_ context.Context, n int) string {
		// stagger completion so results arrive out of order
		time.Sleep(time.Duration(n%5) * time.Millisecond)

		return fmt.Sprintf("item-%d", n)
	})

	assert.Len(t, results, 100)
	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("item-%d", i), res)
	}
}

func TestMapConcurrent_EmptyInput(t *testing.T) {
	results := mapConcurrent(context.Background(), 8, nil, func(_ context.Context, n int) int {
		return n
	})

	assert.Empty(t, results)
}

func TestMapConcurrent_FanoutLargerThanInput(t *testing.T) {
	results := mapConcurrent(context.Background(), 16, []int{1, 2}, func(_ context.Context, n int) int {
		return n * 2
	})

	assert.Equal(t, []int{2, 4}, results)
}

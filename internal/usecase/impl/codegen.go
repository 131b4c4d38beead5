package impl

import (
	"fmt"
	"strconv"
	"strings"

	"aquatrace/internal/domain/entity"
)

// Code prefixes for generated human-readable codes.
const (
	prefixDomicilioPoint   = "PM"
	prefixReservoirPoint   = "PR"
	prefixDistributionNet  = "PD"
	prefixQualityParameter = "PRM"
	prefixQualityTest      = "ANL"
	prefixChlorineRecord   = "CL"
	prefixSulfateRecord    = "SA"
	prefixQualityIncident  = "INC"
)

// nextCode derives the next sequential code for a prefix from the codes
// already issued. It keeps the codes carrying the prefix, takes the
// lexicographic maximum, parses the decimal suffix and increments it.
// An empty scan or an unparsable suffix restarts the sequence at 001.
//
// Callers scan codes of tombstoned records too, so a code is never reissued
// after a logical delete. Concurrent creators may still read the same
// maximum and collide; there is no unique index backing the codes.
func nextCode(codes []string, prefix string) string {
	var max string
	for _, code := range codes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}

		if code > max {
			max = code
		}
	}

	if max == "" {
		return prefix + "001"
	}

	seq, err := strconv.Atoi(max[len(prefix):])
	if err != nil {
		return prefix + "001"
	}

	return fmt.Sprintf("%s%03d", prefix, seq+1)
}

// testingPointPrefix maps a point type to its code prefix. Unknown types
// fall back to the domicilio prefix.
func testingPointPrefix(pointType string) string {
	switch pointType {
	case "RESERVORIO":
		return prefixReservoirPoint
	case "RED_DISTRIBUCION":
		return prefixDistributionNet
	default:
		return prefixDomicilioPoint
	}
}

// dailyRecordPrefix maps a record type to its code prefix. Anything that is
// not chlorine counts as sulfate.
func dailyRecordPrefix(recordType string) string {
	if recordType == entity.RecordTypeChlorine {
		return prefixChlorineRecord
	}

	return prefixSulfateRecord
}

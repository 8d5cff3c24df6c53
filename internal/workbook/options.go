package workbook

import (
	"fmt"
	"strings"
)

// DefaultName is the workbook name used when the caller provides none.
const DefaultName = "GraphQL Generated Workbook"

// DefaultWorkers bounds concurrent sheet generation when Options.Workers is unset.
const DefaultWorkers = 4

// ReferenceCheck selects how reference integrity is validated.
type ReferenceCheck string

const (
	// ReferenceCheckSurviving validates against surviving sheets until a fixed point.
	ReferenceCheckSurviving ReferenceCheck = "surviving"
	// ReferenceCheckUniverse validates once against every extracted object.
	ReferenceCheckUniverse ReferenceCheck = "universe"
)

// ParseReferenceCheck parses a reference check mode. The empty string
// selects ReferenceCheckSurviving.
func ParseReferenceCheck(s string) (ReferenceCheck, error) {
	switch ReferenceCheck(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReferenceCheckSurviving:
		return ReferenceCheckSurviving, nil
	case ReferenceCheckUniverse:
		return ReferenceCheckUniverse, nil
	default:
		return "", fmt.Errorf("unknown reference check %q (want surviving or universe)", s)
	}
}

// Options tunes a Generator.
type Options struct {
	ReferenceCheck ReferenceCheck
	Workers        int
	DefaultName    string
}

func (o Options) withDefaults() Options {
	if o.ReferenceCheck == "" {
		o.ReferenceCheck = ReferenceCheckSurviving
	}

	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}

	if o.DefaultName == "" {
		o.DefaultName = DefaultName
	}

	return o
}

package bounding

import (
	"fmt"
	"strings"
)

// TestMode selects which probe is run against the tracked volumes.
type TestMode uint8

const (
	AabbSweep TestMode = iota
	CircleSweep
	RayCast
	AabbCast
	CircleCast

	testModeCount = 5
)

// DefaultTestMode is the mode a fresh harness starts in.
const DefaultTestMode = RayCast

var testModeNames = [testModeCount]string{"AabbSweep", "CircleSweep", "RayCast", "AabbCast", "CircleCast"}

func (m TestMode) String() string {
	if m < testModeCount {
		return testModeNames[m]
	}
	return fmt.Sprintf("TestMode(%d)", uint8(m))
}

// Next returns the mode after m in the fixed cycle
// AabbSweep, CircleSweep, RayCast, AabbCast, CircleCast.
func (m TestMode) Next() TestMode {
	return (m + 1) % testModeCount
}

// TestModes returns every mode in cycle order.
func TestModes() []TestMode {
	return []TestMode{AabbSweep, CircleSweep, RayCast, AabbCast, CircleCast}
}

// ParseTestMode looks a mode up by name, ignoring case.
func ParseTestMode(s string) (TestMode, error) {
	for i, name := range testModeNames {
		if strings.EqualFold(s, name) {
			return TestMode(i), nil
		}
	}
	return DefaultTestMode, fmt.Errorf("bounding: unknown test mode %q", s)
}

// IsCast reports whether m reports a time of impact.
func (m TestMode) IsCast() bool {
	return m == RayCast || m == AabbCast || m == CircleCast
}

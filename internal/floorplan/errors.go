package floorplan

import "fmt"

// MalformedInputError reports input that cannot be parsed into a plan at
// all (empty file, unreadable content). Fatal: nothing is printed.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

// AmbiguousRoomNameError reports two name tokens resolving to the same
// region. First is the name encountered first in row-major scan order and
// is the deterministic winner for callers that choose to continue anyway.
type AmbiguousRoomNameError struct {
	RegionID int
	First    string
	Second   string
}

func (e *AmbiguousRoomNameError) Error() string {
	return fmt.Sprintf("ambiguous room name: %q and %q resolve to the same room (region %d)",
		e.First, e.Second, e.RegionID)
}

// ContractViolationError reports a chair symbol on a cell the classifier
// marked non-walkable. This indicates a bug, not bad user input.
type ContractViolationError struct {
	X      int
	Y      int
	Symbol rune
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation: chair %q at (%d,%d) is on a non-walkable cell",
		e.Symbol, e.X, e.Y)
}

package winding

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry reports a parameter combination that cannot describe
// any valid rounded rectangle or cannot fit the requested turn count.
// Raised by validation before any geometry is built.
var ErrInvalidGeometry = errors.New("winding: invalid geometry")

// ErrPreconditionViolated reports that a component received un-validated
// input. A caller bypassed validation; this is a programming defect, not
// a user error.
var ErrPreconditionViolated = errors.New("winding: precondition violated")

// ErrGeometryExhausted reports that the assembler ran out of usable window
// area partway through turn synthesis. Use errors.As with a
// *GeometryExhaustedError to recover the completed turn count.
var ErrGeometryExhausted = errors.New("winding: geometry exhausted")

// GeometryExhaustedError carries the number of turns completed before the
// shrinking window became unusable. Validation should reject such inputs
// up front; the assembler defends against it independently.
type GeometryExhaustedError struct {
	// Completed is the number of full turns synthesized before failure.
	Completed int
}

func (e *GeometryExhaustedError) Error() string {
	return fmt.Sprintf("winding: geometry exhausted after %d turns", e.Completed)
}

// Is makes errors.Is(err, ErrGeometryExhausted) succeed.
func (e *GeometryExhaustedError) Is(target error) bool {
	return target == ErrGeometryExhausted
}

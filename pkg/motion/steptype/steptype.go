// Package steptype defines the tagged variant identifying which kind of
// body-level step is in progress or queued (spec §3).
package steptype

// StepType tags a queued or in-progress body-level step.
type StepType int

const (
	// RapidMove jumps directly to end_pos with no interpolation curve
	// tied to elapsed time beyond the supplied move_time.
	RapidMove StepType = iota
	// LinearMoveAbsolute interpolates all six legs to an absolute pose.
	LinearMoveAbsolute
	// LinearMoveRelative interpolates all six legs to current_pos + delta.
	LinearMoveRelative
	// ReturnToNeutral brings foot tips to x=y=yaw=0 stance without
	// translating the body.
	ReturnToNeutral
	// Group0 designates the {0,2,4} tripod as the lifting set.
	Group0
	// Group1 designates the {1,3,5} tripod as the lifting set.
	Group1
)

// groupMask is the single bit Group0 and Group1 must differ by, so that
// a bit flip toggles between them (spec §3, §9). This is a behavioral
// requirement the planner and executor rely on (Hexapod.next_step_type
// toggles via XOR), not an encoding optimization.
const groupMask = 1

var _ = func() struct{} {
	if Group0^groupMask != Group1 || Group1^groupMask != Group0 {
		panic("steptype: Group0 and Group1 must differ by exactly one bit")
	}
	// No non-group constant may XOR onto Group0 or Group1, or XOR-toggling
	// next_step_type could alias onto a non-group step type.
	others := []StepType{RapidMove, LinearMoveAbsolute, LinearMoveRelative, ReturnToNeutral}
	for _, o := range others {
		if o^groupMask == Group0 || o^groupMask == Group1 {
			panic("steptype: a non-group step type aliases a group via XOR 1")
		}
	}
	return struct{}{}
}()

// Toggle returns the other tripod group. Toggle panics if s is not
// Group0 or Group1; callers must only toggle group-typed steps.
func (s StepType) Toggle() StepType {
	if s != Group0 && s != Group1 {
		panic("steptype: Toggle called on a non-group StepType")
	}
	return s ^ groupMask
}

// IsGroup reports whether s is Group0 or Group1.
func (s StepType) IsGroup() bool {
	return s == Group0 || s == Group1
}

// IsAbsolute reports whether a step's end_pos is an absolute target
// (RapidMove, LinearMoveAbsolute, ReturnToNeutral) as opposed to a
// delta composed onto current_pos (LinearMoveRelative, Group0, Group1).
func (s StepType) IsAbsolute() bool {
	return s == RapidMove || s == LinearMoveAbsolute || s == ReturnToNeutral
}

// String renders a StepType for logs and test failures.
func (s StepType) String() string {
	switch s {
	case RapidMove:
		return "RAPID_MOVE"
	case LinearMoveAbsolute:
		return "LINEAR_MOVE_ABSOLUTE"
	case LinearMoveRelative:
		return "LINEAR_MOVE_RELATIVE"
	case ReturnToNeutral:
		return "RETURN_TO_NEUTRAL"
	case Group0:
		return "GROUP0"
	case Group1:
		return "GROUP1"
	default:
		return "UNKNOWN"
	}
}

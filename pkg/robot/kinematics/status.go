package kinematics

// Status is the small integer result code body IK returns, matching the
// firmware's original numeric codes (spec §7).
type Status int

const (
	// OK indicates all targets were computed and accepted.
	OK Status = 0
	// PreCheckFail indicates pre_check_safe_pos rejected the pose before
	// any target was computed.
	PreCheckFail Status = 254
	// PostCheckFail indicates post_check_safe_coords rejected at least
	// one computed leg-frame target.
	PostCheckFail Status = 255
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case PreCheckFail:
		return "PreCheckFail"
	case PostCheckFail:
		return "PostCheckFail"
	default:
		return "Unknown"
	}
}

package kinematics

import (
	"github.com/chewxy/math32"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
)

// PreCheck is called once per Forward() before any target is computed.
// Rejecting the pose (returning false) aborts with PreCheckFail and
// mutates nothing. The default PreCheck always accepts; it is a hook
// for future dynamic limits (spec §9(c) — do not tighten without test
// coverage).
type PreCheck func(p pose.Pose) bool

// PostCheck is called once per computed leg-frame target. Rejecting any
// target (returning false) aborts the whole call with PostCheckFail.
// The default PostCheck always accepts, for the same reason as PreCheck.
type PostCheck func(x, y, z float32) bool

func defaultPreCheck(pose.Pose) bool        { return true }
func defaultPostCheck(x, y, z float32) bool { return true }

// BodyIK maps a body pose to six leg-frame foot-tip targets (spec §4.3).
//
// Grounded on pkg/robot/kinematics.Kinematics' Forward/Inverse shape and
// on the steer6 six-unit drive, the only file in the pack that, like a
// hexapod, carries a fixed six-element array of per-unit mounting
// offsets consumed by a single body-level command.
type BodyIK struct {
	Mounts       [6]LegMount
	StanceOffset vec3.Vec3

	PreCheck  PreCheck
	PostCheck PostCheck
}

// NewBodyIK builds a BodyIK with the default (always-accepting) safety
// hooks installed.
func NewBodyIK(mounts [6]LegMount, stanceOffset vec3.Vec3) *BodyIK {
	return &BodyIK{
		Mounts:       mounts,
		StanceOffset: stanceOffset,
		PreCheck:     defaultPreCheck,
		PostCheck:    defaultPostCheck,
	}
}

// DOF reports the number of legs this BodyIK resolves, satisfying
// Kinematics.
func (b *BodyIK) DOF() int { return 6 }

// Inverse is not meaningful for body IK: the axis-level arm IK that
// turns a leg-frame target into joint angles lives outside this
// package (spec §1). It always reports false.
func (b *BodyIK) Inverse() bool { return false }

// Forward runs the §4.3 procedure: pre-check, angular rescale, per-leg
// tilt compensation, stance transform, post-check, emit. Only legs
// whose activeLegs bit is set are written into the result; the
// remaining slots are left zero. Targets for inactive legs are skipped
// entirely, matching spec §4.3 step 6 ("write ... in mask order;
// others are skipped").
func (b *BodyIK) Forward(p pose.Pose, activeLegs [6]bool) ([6]vec3.Vec3, Status) {
	var targets [6]vec3.Vec3

	if !b.safePreCheck(p) {
		return targets, PreCheckFail
	}

	roll := p.RollRad()
	pitch := p.PitchRad()
	yaw := p.YawRad()
	sinPitch := math32.Sin(pitch)
	sinRoll := math32.Sin(roll)

	for i, mount := range b.Mounts {
		if !activeLegs[i] {
			continue
		}

		// Step 3: per-leg tilt compensation.
		zi := p.Z + sinPitch*(mount.XOffset+p.X) + sinRoll*(mount.YOffset+p.Y)

		// Step 4: stance transform — rotate by home yaw, add stance
		// offset, rotate by body yaw.
		temp := vec3.New(p.X, p.Y, zi)
		target := mount.ToLegFrame(temp, b.StanceOffset).RotateYaw(yaw)

		if !b.safePostCheck(target) {
			return [6]vec3.Vec3{}, PostCheckFail
		}

		targets[i] = target
	}

	return targets, OK
}

func (b *BodyIK) safePreCheck(p pose.Pose) bool {
	if b.PreCheck == nil {
		return true
	}
	return b.PreCheck(p)
}

func (b *BodyIK) safePostCheck(v vec3.Vec3) bool {
	if b.PostCheck == nil {
		return true
	}
	return b.PostCheck(v.X, v.Y, v.Z)
}

var _ Kinematics = (*BodyIK)(nil)

package kinematics

import "github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"

// LegMount describes one leg's fixed mounting geometry relative to the
// body center: its (X, Y) offset from the body origin and its home yaw,
// the angle its coxa is bolted on at (spec §3, "leg_X_offset",
// "leg_Y_offset", "home_yaws").
//
// Grounded on the steer6 six-unit mounting array
// (pkg/core/math/control/kinematics/wheels/steer6) generalized from a
// wheel's (x, halfTrack) pair to a leg's full (x, y, homeYaw) triple.
type LegMount struct {
	XOffset float32
	YOffset float32
	HomeYaw float32
}

// ToLegFrame converts a body-frame foot-tip candidate into the leg
// frame: rotate by the leg's home yaw about z, then add the shared
// stance offset (spec §4.2). The axis-level arm IK downstream consumes
// this leg-frame target; it is not computed here.
func (m LegMount) ToLegFrame(bodyFrame vec3.Vec3, stanceOffset vec3.Vec3) vec3.Vec3 {
	return bodyFrame.RotateYaw(m.HomeYaw).Add(stanceOffset)
}

// Package kinematics maps a hexapod body pose to six leg-frame foot-tip
// targets: the per-leg mounting adapter (spec §4.2) and body inverse
// kinematics (spec §4.3). The axis-level arm IK that turns a leg-frame
// foot-tip into joint angles is external to this package (spec §1).
package kinematics

import (
	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
)

// Kinematics is the narrow interface this package's BodyIK satisfies,
// kept for family resemblance with the rest of the control/kinematics
// stack (wheeled-drive kinematics there expose the same Forward/Inverse
// shape). Inverse is not meaningful here: turning a leg-frame foot-tip
// back into joint angles is the external axis-level arm IK's job.
type Kinematics interface {
	DOF() int
	Forward(p pose.Pose, activeLegs [6]bool) ([6]vec3.Vec3, Status)
	Inverse() bool
}

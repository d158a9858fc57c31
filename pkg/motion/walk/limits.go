// Package walk implements the tripod-gait planner: walk setup (spec
// §4.5.3) and velocity-command streaming (spec §4.5.4) on top of the
// step package's queue and reach-envelope math.
//
// Grounded on pkg/core/math/control/motion/planner's shape of a
// stateful planner object sitting on top of pure geometry helpers
// (this package defines no sentinel errors and NewPlanner does not
// validate its limits), adapted to the spec's own decision
// tree rather than the teacher's waypoint-following logic (which has
// no tripod/envelope concept).
package walk

import (
	"github.com/chewxy/math32"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/step"
)

// Limits holds the body-pose safety bounds the planner checks before
// deciding a displacement needs no step at all (spec §4.5.3 step 1)
// and the small-delta linear-move threshold (step 2), plus the
// configured nominal reach envelope (spec §4.5.1's MAX_STEP_MAGNITUDE)
// the quadratic solver scales against. All angular fields are
// expressed in the same hundredths-of-radian scale as pose.Pose so
// they compare directly against pose components.
type Limits struct {
	MaxStepMagnitude   float32
	ZMax               float32
	RollMax, PitchMax  float32
	XMaxNoStep         float32
	YMaxNoStep         float32
	YawMaxNoStep       float32
	MaxStepSpeed       float32
	StepToNeutralSpeed float32
}

// DefaultLimits mirrors spec §6's constants: MAX_STEP_MAGNITUDE=75,
// Z_MAX=200, ROLL_MAX=PITCH_MAX=π/8, X_MAX_NO_STEP=Y_MAX_NO_STEP=20,
// YAW_MAX_NO_STEP=π/32, MAX_STEP_SPEED=300, STEP_TO_NEUTRAL_SPEED=200.
func DefaultLimits() Limits {
	return Limits{
		MaxStepMagnitude:   step.DefaultMaxStepMagnitude,
		ZMax:               200,
		RollMax:            math32.Pi / 8 * 100,
		PitchMax:           math32.Pi / 8 * 100,
		XMaxNoStep:         20,
		YMaxNoStep:         20,
		YawMaxNoStep:       math32.Pi / 32 * 100,
		MaxStepSpeed:       300,
		StepToNeutralSpeed: 200,
	}
}

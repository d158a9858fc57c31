// Package leg defines the narrow external Leg actuator interface (spec
// §6) and the bounded per-leg operation queue (spec §4.4) that the
// hexapod's combo executor drains independently of the body-level step
// queue.
//
// Grounded on pkg/robot/actuator's Actuator interface shape
// (Configure/Get/Set) in the wider EasyRobot stack, narrowed to the
// exact calls spec §6 names for a leg: initialize, rapid_move,
// linear_move_setup/perform, wait, is_moving. The axis-level PWM driver
// behind this interface, and the arm's forward kinematics, are external
// collaborators per spec §1.
package leg

import "github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"

// Status mirrors the small integer result codes spec §7 names.
type Status int

const (
	// OK indicates the move was accepted as requested.
	OK Status = 0
	// SpeedCapped indicates the requested speed exceeded max_speed and
	// was clamped; the move still proceeds.
	SpeedCapped Status = 1
)

// Leg is the axis-level actuator this package drives. Implementations
// live outside this module's scope (spec §1): a real implementation
// turns (x, y, z) into three joint angles via closed-form arm IK and
// dispatches PWM; stubLeg in this package's tests merely records the
// target.
type Leg interface {
	// Initialize prepares the leg's servos for motion (torque enable
	// etc.) at startup. legIndex is this leg's position in Hexapod's
	// Legs array (0-5).
	Initialize(legIndex int)

	// RapidMove sets an immediate target with no interpolation.
	RapidMove(x, y, z float32) bool

	// LinearMoveSetup begins a timed linear move toward (x, y, z),
	// absolute or relative to the leg's current target, at the given
	// speed. LinearMovePerform must be called on subsequent ticks to
	// advance it.
	LinearMoveSetup(x, y, z, speed float32, relative bool) Status
	// LinearMovePerform advances a move set up by LinearMoveSetup by
	// one tick.
	LinearMovePerform()

	// Wait holds position for ms milliseconds before the leg reports
	// IsMoving() == false again.
	Wait(ms uint32)

	// IsMoving reports whether the leg is currently executing a move
	// or wait.
	IsMoving() bool

	// ForwardKinematics is a diagnostic call only; the motion core's
	// trajectory path never calls it (spec §6).
	ForwardKinematics(a0, a1, a2 float32) vec3.Vec3

	// DetachServo powers down this leg's servos (used only by the
	// detach-all convenience, spec §12 item 4).
	DetachServo()
}

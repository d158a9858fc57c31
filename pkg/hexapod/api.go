package hexapod

import (
	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/step"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/steptype"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/kinematics"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/leg"
)

// Sit enqueues a rapid move to the configured sit height, legs flat on
// the ground (spec §6 "sit()").
func (h *Hexapod) Sit() error {
	return h.EnqueueRapidMove(pose.New(0, 0, h.Geometry.SitHeight, 0, 0, 0))
}

// Stand enqueues a rapid move to the configured standing stance (spec
// §6 "stand()").
func (h *Hexapod) Stand() error {
	return h.EnqueueRapidMove(pose.New(0, 0, h.Geometry.StandHeight, 0, 0, 0))
}

// MoveToZeros enqueues a rapid move to the all-zero pose (spec §6
// "move_to_zeros()").
func (h *Hexapod) MoveToZeros() error {
	return h.EnqueueRapidMove(pose.New(0, 0, 0, 0, 0, 0))
}

// RapidMove dispatches p immediately through body IK, bypassing the
// step queue entirely (spec §6 "rapid_move(pose)"). It is the same
// primitive the executor's tick path uses, exposed for direct callers.
func (h *Hexapod) RapidMove(p pose.Pose) kinematics.Status {
	return h.rapidMove(p, allLegsActive(), true)
}

// EnqueueRapidMove queues an absolute RapidMove step with zero speed,
// which the executor dispatches in a single tick with no interpolation
// (spec §6 "enqueue_rapid_move(pose)").
func (h *Hexapod) EnqueueRapidMove(p pose.Pose) error {
	return h.StepQueue.Enqueue(step.NewBySpeed(p, 0, steptype.RapidMove))
}

// EnqueueLinearMove queues a timed linear move to p at speed, absolute
// or relative to current_pos (spec §6 "enqueue_linear_move(pose,
// speed, relative=false)").
func (h *Hexapod) EnqueueLinearMove(p pose.Pose, speed float32, relative bool) error {
	st := steptype.LinearMoveAbsolute
	if relative {
		st = steptype.LinearMoveRelative
	}
	return h.StepQueue.Enqueue(step.NewBySpeed(p, speed, st))
}

// WalkSetup plans a relative body displacement at speed into zero or
// more queued steps and returns the total queued duration in
// milliseconds (spec §6 "walk_setup(relative_pose, speed) ->
// queued_ms").
func (h *Hexapod) WalkSetup(relative pose.Pose, speed float32) uint32 {
	return h.Planner.WalkSetup(h.CurrentPos, relative, speed)
}

// SetWalkVelocity installs a continuous velocity command that the
// idle-tick path streams into steps whenever the step queue drains
// (spec §6 "set_walk_velocity(pose)").
func (h *Hexapod) SetWalkVelocity(v pose.Pose) {
	h.WalkVelocity = v
}

// ReturnToNeutral queues a RETURN_TO_NEUTRAL step bringing foot tips to
// the canonical x=y=yaw=0 stance at the configured neutralizing speed,
// without translating the body (spec §6 "return_to_neutral()").
func (h *Hexapod) ReturnToNeutral() error {
	q := h.StepQueue.CurrentQueueEndPos(h.CurrentPos)
	target := pose.New(0, 0, q.Z, q.Roll, q.Pitch, 0)
	return h.StepQueue.Enqueue(step.NewBySpeed(target, h.Geometry.StepToNeutralSpeed, steptype.ReturnToNeutral))
}

// LegEnqueue queues a per-leg move by speed (spec §6 "leg_enqueue(leg,
// end, speed, relative, wait=0)").
func (h *Hexapod) LegEnqueue(legIdx int, end vec3.Vec3, speed float32, relative bool, waitMs uint32) error {
	return h.LegQueue[legIdx].Enqueue(leg.NewOpBySpeed(end, speed, relative, waitMs))
}

// LegEnqueueDuration queues a per-leg move by duration, deriving speed
// from the displacement (spec §6 "leg_enqueue(leg, end, duration,
// relative, wait=0)").
func (h *Hexapod) LegEnqueueDuration(legIdx int, end vec3.Vec3, durationMs uint32, relative bool, waitMs uint32) error {
	tailPos := h.LegQueue[legIdx].CurrentQueueEndPos(vec3.Vec3{})
	return h.LegQueue[legIdx].Enqueue(leg.NewOpByDuration(end, tailPos, durationMs, relative, waitMs))
}

// LinearMovePerform advances every leg whose LinearMoveSetup is still
// in flight by one tick (spec §6 "linear_move_perform()"): it is the
// core-level counterpart to the per-leg Leg.LinearMovePerform the Leg
// API names, applied across all six legs at once.
func (h *Hexapod) LinearMovePerform() {
	for i := range h.Legs {
		if h.Legs[i].IsMoving() {
			h.Legs[i].LinearMovePerform()
		}
	}
}

// RunSpeed is the single per-tick driver the original firmware main
// loop called: it advances the body-level step executor, any in-flight
// per-leg linear moves, and the per-leg queue dispatcher, in that
// order (spec §6 "run_speed()"; spec §12 supplement 3).
func (h *Hexapod) RunSpeed(now uint32) {
	h.WalkPerform(now)
	h.LinearMovePerform()
	h.ComboMovePerform()
}

// ComboMovePerform interleaves per-leg queue dispatch with the body-
// level step executor (spec §4.6 "combo_move_perform()"). For each
// leg: if it is already moving, it's counted in the low byte; else if
// its queue holds an Op, that Op is dequeued and dispatched — a pure
// wait if WaitTimeMs is non-zero, otherwise a linear move — and that
// leg is counted in the high byte. The result packs moving-leg count
// in the low byte and newly-dispatched count in the high byte.
func (h *Hexapod) ComboMovePerform() uint16 {
	var moving, dispatched uint16

	for i := range h.Legs {
		if h.Legs[i].IsMoving() {
			moving++
			continue
		}

		op, ok := h.LegQueue[i].Dequeue()
		if !ok {
			continue
		}

		if op.WaitTimeMs > 0 {
			h.Legs[i].Wait(op.WaitTimeMs)
		} else {
			h.Legs[i].LinearMoveSetup(op.EndPos.X, op.EndPos.Y, op.EndPos.Z, op.Speed, op.Relative)
		}
		dispatched++
	}

	return moving | dispatched<<8
}

// IsLowLevelBusy reports whether any leg is currently moving, or the
// low-level moving flag is set (spec §4.7).
func (h *Hexapod) IsLowLevelBusy() bool {
	if h.MovingFlag {
		return true
	}
	for i := range h.Legs {
		if h.Legs[i].IsMoving() {
			return true
		}
	}
	return false
}

// IsBusy reports whether the hexapod is executing low-level motion or a
// high-level move (spec §4.7). This is the only query external command
// loops gate new enqueues on.
func (h *Hexapod) IsBusy() bool {
	return h.IsLowLevelBusy() || h.HighLevelMoveFlag
}

// GetDistance returns the planar (x, y) distance from the hexapod's
// current pose to target, ignoring z and all three angular components
// (spec §6 "get_distance(target)"; the original firmware's
// getDistance likewise drops the dz term and never touches
// roll/pitch/yaw).
func (h *Hexapod) GetDistance(target pose.Pose) float32 {
	return target.DistanceXY(h.CurrentPos)
}

// GetMaxStepMagnitude returns M(q) for the composed pose the planner
// currently sees, the reach envelope §4.5.1 describes (spec §6
// "get_max_step_magnitude()").
func (h *Hexapod) GetMaxStepMagnitude() float32 {
	q := h.StepQueue.CurrentQueueEndPos(h.CurrentPos)
	return step.MaxStepMagnitudeAt(q, h.Planner.Limits.MaxStepMagnitude)
}

package walk

import (
	"github.com/chewxy/math32"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/step"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/steptype"
)

// NoOpEpsilon is the displacement magnitude below which walk setup
// does nothing, provided the resulting pose is still within limits
// (spec §4.5.3 step 1).
const NoOpEpsilon = 1e-3

// DirectionEpsilon is the projected-direction magnitude below which a
// velocity command is treated as zero (spec §4.5.4).
const DirectionEpsilon = 1e-3

// Planner turns relative displacements and velocity commands into
// sequences of step.Step queued onto a shared step.Queue, tracking
// which tripod group the next non-neutral step belongs to.
//
// The hexapod package owns one Planner per instance and supplies the
// body's live current_pos on every call, since the planner itself
// holds no notion of "now" beyond the queue it plans against.
type Planner struct {
	Queue        *step.Queue
	NextStepType steptype.StepType
	Limits       Limits
}

// NewPlanner builds a Planner over an existing step queue, with the
// first non-neutral step defaulting to Group0 (spec §3: "next_step_type").
func NewPlanner(q *step.Queue, limits Limits) *Planner {
	return &Planner{Queue: q, NextStepType: steptype.Group0, Limits: limits}
}

// currentQ returns the composed pose the planner sees after every
// currently queued step executes, given the hexapod's live pose.
func (p *Planner) currentQ(currentPos pose.Pose) pose.Pose {
	return p.Queue.CurrentQueueEndPos(currentPos)
}

func (p *Planner) maxStep(currentPos, dir pose.Pose, flipped bool) float32 {
	return step.MaxStepInDirection(p.currentQ(currentPos), dir, flipped, p.Limits.MaxStepMagnitude)
}

func withinPoseLimits(p pose.Pose, limits Limits) bool {
	return p.Z <= limits.ZMax &&
		math32.Abs(p.Roll) <= limits.RollMax &&
		math32.Abs(p.Pitch) <= limits.PitchMax
}

// neutralTargetFrom returns q with (x, y, yaw) zeroed: the
// "RETURN_TO_NEUTRAL" target, which brings foot tips to the canonical
// stance without disturbing z/roll/pitch (spec §4.5.3 step c,
// §4.5.4).
func neutralTargetFrom(q pose.Pose) pose.Pose {
	return pose.New(0, 0, q.Z, q.Roll, q.Pitch, 0)
}

// WalkSetup plans a relative body displacement r at the given speed
// against the hexapod's live currentPos, enqueuing zero or more Steps
// and returning the total queued duration in milliseconds (spec
// §4.5.3).
func (p *Planner) WalkSetup(currentPos, r pose.Pose, speed float32) uint32 {
	// Step 1: no-op guard. Conservative interpretation (documented open
	// question): both the displacement-is-negligible AND the
	// resulting-pose-is-within-limits conditions must hold.
	if r.Magnitude() <= NoOpEpsilon && withinPoseLimits(currentPos.Add(r), p.Limits) {
		return 0
	}

	q := p.currentQ(currentPos)

	// Step 2: small planar+yaw delta needs no tripod step at all.
	if math32.Abs(q.X+r.X) <= p.Limits.XMaxNoStep &&
		math32.Abs(q.Y+r.Y) <= p.Limits.YMaxNoStep &&
		math32.Abs(q.Yaw+r.Yaw) <= p.Limits.YawMaxNoStep {
		s := step.NewBySpeed(r, speed, steptype.LinearMoveRelative)
		p.Queue.Enqueue(s)
		return s.TimeMs
	}

	// Step 3: tripod step sequence.
	dir := r.Unit()
	sFlip := p.maxStep(currentPos, dir, true)
	sNoFlip := p.maxStep(currentPos, dir, false)

	var flipFirst bool
	s := sNoFlip
	if sFlip >= sNoFlip {
		flipFirst = true
		s = sFlip
	}

	var totalMs uint32
	m := step.MaxStepMagnitudeAt(q, p.Limits.MaxStepMagnitude)
	if s < m {
		rtn := step.NewBySpeed(neutralTargetFrom(q), speed, steptype.ReturnToNeutral)
		p.Queue.Enqueue(rtn)
		totalMs += rtn.TimeMs
		s = p.maxStep(currentPos, dir, false)
	} else if flipFirst {
		p.NextStepType = p.NextStepType.Toggle()
	}

	rMag := r.Magnitude()
	if s > rMag {
		st := step.NewBySpeed(r, speed, p.NextStepType)
		p.Queue.Enqueue(st)
		totalMs += st.TimeMs
		return totalMs
	}

	firstDisp := dir.MulC(s)
	first := step.NewBySpeed(firstDisp, speed, p.NextStepType)
	p.Queue.Enqueue(first)
	totalMs += first.TimeMs
	traveled := firstDisp

	for {
		p.NextStepType = p.NextStepType.Toggle()
		sK := p.maxStep(currentPos, dir, true)
		disp := dir.MulC(sK)

		if traveled.Add(disp).Magnitude() >= rMag {
			final := step.NewBySpeed(r.Sub(traveled), speed, p.NextStepType)
			p.Queue.Enqueue(final)
			totalMs += final.TimeMs
			break
		}

		st := step.NewBySpeed(disp, speed, p.NextStepType)
		p.Queue.Enqueue(st)
		totalMs += st.TimeMs
		traveled = traveled.Add(disp)
	}

	return totalMs
}

// EnqueueMaxStepInDirection plans one step toward walkVelocity scaled
// by scalar, used by the executor's idle-queue velocity-streaming path
// (spec §4.5.4). speed is taken as |walkVelocity|, since walkVelocity
// doubles as both direction and the speed the caller wants that
// direction honored at.
func (p *Planner) EnqueueMaxStepInDirection(currentPos, walkVelocity pose.Pose, scalar float32) uint32 {
	if walkVelocity.XYYawProjection().Magnitude() < DirectionEpsilon {
		return 0
	}

	sFlip := p.maxStep(currentPos, walkVelocity, true)
	sNoFlip := p.maxStep(currentPos, walkVelocity, false)

	chosen := sNoFlip
	if sFlip > sNoFlip {
		chosen = sFlip
		p.NextStepType = p.NextStepType.Toggle()
	}

	q := p.currentQ(currentPos)
	m := step.MaxStepMagnitudeAt(q, p.Limits.MaxStepMagnitude)
	speed := walkVelocity.Magnitude()

	var totalMs uint32
	if chosen < m {
		rtn := step.NewBySpeed(neutralTargetFrom(q), speed, steptype.ReturnToNeutral)
		p.Queue.Enqueue(rtn)
		totalMs += rtn.TimeMs
	}

	disp := walkVelocity.Unit().MulC(chosen * math32.Abs(scalar))
	st := step.NewBySpeed(disp, speed, p.NextStepType)
	p.Queue.Enqueue(st)
	totalMs += st.TimeMs

	return totalMs
}

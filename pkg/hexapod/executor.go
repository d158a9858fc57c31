package hexapod

import (
	"github.com/chewxy/math32"

	"github.com/ManufacturedMotion/Hex3/internal/corelog"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/steptype"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/kinematics"
)

// WalkPerform is the single per-tick entry point for body-level motion
// (spec §4.6). It is strictly cooperative: it always returns promptly
// and never blocks.
func (h *Hexapod) WalkPerform(now uint32) {
	if h.StepInProgress {
		h.tickActiveStep(now)
		return
	}
	h.tickIdle(now)
}

// tickActiveStep advances the in-progress step by one tick (spec §4.6
// Case A).
func (h *Hexapod) tickActiveStep(now uint32) {
	h.HighLevelMoveFlag = true

	if h.MoveTime == 0 {
		// A rapid move carries no interpolation window (time == 0 is the
		// "speed == 0" rapid case, spec §3's last invariant); dispatch
		// once and complete.
		h.rapidMove(h.EndPos, allLegsActive(), true)
		h.finishStep()
		return
	}

	p := float32(now-h.MoveStartTime) / float32(h.MoveTime)
	if p > 1 {
		h.finishStep()
		return
	}

	switch h.CurrentStepType {
	case steptype.LinearMoveAbsolute, steptype.LinearMoveRelative:
		next := pose.Lerp(h.StartPos, h.EndPos, p)
		h.rapidMove(next, allLegsActive(), true)
	case steptype.RapidMove:
		h.rapidMove(h.EndPos, allLegsActive(), true)
	case steptype.Group0, steptype.Group1:
		h.tickGroupStep(p)
	case steptype.ReturnToNeutral:
		h.tickReturnToNeutral(p)
	}

	h.LastStepProgress = p
}

func (h *Hexapod) finishStep() {
	h.StepInProgress = false
	h.HighLevelMoveFlag = false
	h.LastStepType = h.CurrentStepType
	h.LastStepProgress = 0
}

// archHeight is the parabolic foot-lift curve peaking at
// MAX_STEP_HEIGHT when p = 0.5 and touching 0 at p = 0 and p = 1 (spec
// §4.6, §8 "Executor invariants").
func archHeight(p, maxStepHeight float32) float32 {
	return -4 * p * (p - 1) * maxStepHeight
}

// tickGroupStep drives a GROUP0/GROUP1 step: the lifting tripod
// advances toward end_pos with a parabolic arch; the other tripod is
// simultaneously driven to the mirror of that same arched position, to
// settle it back toward neutral while the body advances (spec §4.6).
func (h *Hexapod) tickGroupStep(p float32) {
	lifting := h.CurrentStepType
	mirror := lifting.Toggle()

	next := pose.Lerp(h.StartPos, h.EndPos, p)
	next.Z += archHeight(p, h.Geometry.MaxStepHeight)

	h.rapidMove(next, legMaskForGroup(lifting), true)
	h.rapidMove(next.NegXYYaw(), legMaskForGroup(mirror), false)
}

// neutralHalves picks which tripod neutralizes in each half of a
// RETURN_TO_NEUTRAL step, consolidating what would otherwise be
// duplicated first-half/second-half branches into one table (spec §9,
// open question (b)): the tripod is the last step's group if there was
// one, defaulting to Group0, with the other tripod taking the second
// half.
func neutralHalves(last steptype.StepType) (first, second steptype.StepType) {
	first = steptype.Group0
	if last.IsGroup() {
		first = last
	}
	return first, first.Toggle()
}

// tickReturnToNeutral drives a RETURN_TO_NEUTRAL step: the interval is
// split in half, each half settling one tripod to the canonical
// x=y=yaw=0 stance with the same parabolic arch a GROUP step uses. The
// second half re-mirrors start_pos.{x,y,yaw} so the two halves are
// geometrically symmetric. The body pose itself never advances (spec
// §4.6).
func (h *Hexapod) tickReturnToNeutral(p float32) {
	firstGroup, secondGroup := neutralHalves(h.LastStepType)

	neutralTarget := pose.New(0, 0, h.StartPos.Z, h.StartPos.Roll, h.StartPos.Pitch, 0)

	var group steptype.StepType
	var from pose.Pose
	var pPrime float32
	if p < 0.5 {
		group = firstGroup
		from = h.StartPos
		pPrime = 2 * p
	} else {
		group = secondGroup
		from = h.StartPos.NegXYYaw()
		pPrime = 2 * (p - 0.5)
	}

	next := pose.Lerp(from, neutralTarget, pPrime)
	next.Z += archHeight(pPrime, h.Geometry.MaxStepHeight)

	h.rapidMove(next, legMaskForGroup(group), false)
}

// tickIdle is spec §4.6 Case B: no step in progress.
func (h *Hexapod) tickIdle(now uint32) {
	h.HighLevelMoveFlag = false

	if h.StepQueue.IsEmpty() {
		scalar := math32.Max(h.WalkVelocity.Magnitude()/h.Geometry.MaxStepSpeed, 0.25)
		h.Planner.EnqueueMaxStepInDirection(h.CurrentPos, h.WalkVelocity, scalar)
		return
	}

	s, ok := h.StepQueue.Dequeue()
	if !ok {
		return
	}

	h.CurrentStepType = s.StepType

	if h.LastStepType.IsGroup() && s.StepType.IsGroup() && h.LastStepType != s.StepType {
		h.CurrentPos = h.CurrentPos.NegXYYaw()
	}

	if s.StepType.IsAbsolute() {
		h.EndPos = s.EndPos
	} else {
		h.EndPos = h.CurrentPos.Add(s.EndPos)
	}

	h.StartPos = h.CurrentPos
	h.MoveTime = s.TimeMs
	h.MoveStartTime = now
	h.StepInProgress = true
	h.HighLevelMoveFlag = true
	h.LastStepProgress = 0
}

// rapidMove runs body IK over p restricted to activeLegs, dispatches an
// immediate per-leg rapid move to every active leg that is currently
// idle, and optionally commits current_pos (spec §4.6
// "rapid_move(pose, active_legs, update_current_pos)").
func (h *Hexapod) rapidMove(p pose.Pose, activeLegs [6]bool, updateCurrentPos bool) kinematics.Status {
	targets, status := h.IK.Forward(p, activeLegs)
	if status != kinematics.OK {
		corelog.Log.Error().Str("status", status.String()).Msg("rapid move rejected by body IK")
		return status
	}

	for i, active := range activeLegs {
		if !active || h.Legs[i].IsMoving() {
			continue
		}
		h.Legs[i].RapidMove(targets[i].X, targets[i].Y, targets[i].Z)
	}

	if updateCurrentPos {
		h.CurrentPos = p
	}
	return status
}

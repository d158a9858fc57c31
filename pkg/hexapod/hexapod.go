// Package hexapod assembles the body pose algebra, leg kinematics,
// step/leg queues and walk planner into the single-threaded cooperative
// motion core spec §4.6-4.7 and §6 describe: a Hexapod owns its six
// legs and queues exclusively, and every mutation happens from a tick
// call or a command method running in the same execution context.
//
// Grounded on johan---hexapod's Hexapod struct (a leg array plus a
// state machine driven by an externally invoked tick) for the overall
// shape of "one owning object holds legs + queues + constants and
// exposes a tick method" — that repo's SetState/stateCounter state
// machine is reference only (it is not a complete Go module and so is
// not this project's teacher); the actual per-tick decision logic
// below is this package's own, built directly from spec §4.6.
package hexapod

import (
	"errors"

	"github.com/ManufacturedMotion/Hex3/config"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/step"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/steptype"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/walk"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/kinematics"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/leg"
)

// stepGroups names which three legs belong to each alternating tripod
// (spec §3: "step_groups[2][3] = {{0,2,4},{1,3,5}}").
var stepGroups = [2][3]int{{0, 2, 4}, {1, 3, 5}}

// Hexapod is the motion core: body pose state, the step queue and six
// per-leg queues, the body IK and walk planner built over them, and
// the six Leg actuators they drive.
type Hexapod struct {
	Legs     [6]leg.Leg
	LegQueue [6]leg.Queue

	IK      *kinematics.BodyIK
	Planner *walk.Planner

	Geometry *config.Geometry

	StepQueue step.Queue

	CurrentPos        pose.Pose
	StartPos, EndPos  pose.Pose
	MoveStartTime     uint32
	MoveTime          uint32
	LastStepProgress  float32
	CurrentStepType   steptype.StepType
	LastStepType      steptype.StepType
	StepInProgress    bool
	MovingFlag        bool
	HighLevelMoveFlag bool
	WalkVelocity      pose.Pose
}

// ErrNilLeg is returned by New when one of the six Leg actuators is nil.
var ErrNilLeg = errors.New("hexapod: leg must not be nil")

// ErrNilGeometry is returned by New when geom is nil.
var ErrNilGeometry = errors.New("hexapod: geometry must not be nil")

// New builds a Hexapod from the six Leg actuators and a loaded
// Geometry (spec §3 "Hexapod state" / §6 "Constants"). legs must be in
// the same order as Geometry.Legs.
func New(legs [6]leg.Leg, geom *config.Geometry) (*Hexapod, error) {
	if geom == nil {
		return nil, ErrNilGeometry
	}
	for _, l := range legs {
		if l == nil {
			return nil, ErrNilLeg
		}
	}

	var mounts [6]kinematics.LegMount
	for i, lg := range geom.Legs {
		mounts[i] = kinematics.LegMount{XOffset: lg.XOffset, YOffset: lg.YOffset, HomeYaw: lg.HomeYaw}
	}
	stance := vec3.New(geom.StanceX, geom.StanceY, geom.StanceZ)
	ik := kinematics.NewBodyIK(mounts, stance)

	h := &Hexapod{
		Legs:     legs,
		IK:       ik,
		Geometry: geom,
	}
	h.Planner = walk.NewPlanner(&h.StepQueue, walk.Limits{
		MaxStepMagnitude:   geom.MaxStepMagnitude,
		ZMax:               geom.ZMax,
		RollMax:            geom.RollMax,
		PitchMax:           geom.PitchMax,
		XMaxNoStep:         geom.XMaxNoStep,
		YMaxNoStep:         geom.YMaxNoStep,
		YawMaxNoStep:       geom.YawMaxNoStep,
		MaxStepSpeed:       geom.MaxStepSpeed,
		StepToNeutralSpeed: geom.StepToNeutralSpeed,
	})
	return h, nil
}

// allLegsActive is the active-leg mask used by every body-level move
// that is not restricted to a single tripod.
func allLegsActive() [6]bool {
	return [6]bool{true, true, true, true, true, true}
}

// legMaskForGroup returns the active-leg mask for one tripod (spec §3
// stepGroups).
func legMaskForGroup(g steptype.StepType) [6]bool {
	var mask [6]bool
	idx := 0
	if g == steptype.Group1 {
		idx = 1
	}
	for _, i := range stepGroups[idx] {
		mask[i] = true
	}
	return mask
}

// Initialize runs one-shot startup bring-up: it calls Leg.Initialize on
// each leg in order, busy-waiting staggerMs between legs to avoid a
// brownout from all six servos enabling torque simultaneously (spec
// §12 supplement 5). This runs once before the tick loop starts; it is
// not part of the cooperative tick path and may block.
func (h *Hexapod) Initialize(clock Clock, staggerMs uint32) {
	for i, l := range h.Legs {
		l.Initialize(i)
		if staggerMs == 0 {
			continue
		}
		until := clock.NowMs() + staggerMs
		for clock.NowMs() < until {
		}
	}
}

// DetachAll powers down every leg's servos (spec §12 supplement 4).
func (h *Hexapod) DetachAll() {
	for _, l := range h.Legs {
		l.DetachServo()
	}
}

package hexapod

import (
	"testing"

	"github.com/ManufacturedMotion/Hex3/config"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/step"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/steptype"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/kinematics"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/leg"
)

// stubLeg is a minimal in-memory Leg, mirroring
// pkg/robot/leg's own test stub, used here to drive a full Hexapod
// without a real servo transport.
type stubLeg struct {
	index    int
	target   vec3.Vec3
	moving   bool
	waitMs   uint32
	detached bool
}

func (s *stubLeg) Initialize(legIndex int) { s.index = legIndex }

func (s *stubLeg) RapidMove(x, y, z float32) bool {
	s.target = vec3.New(x, y, z)
	return true
}

func (s *stubLeg) LinearMoveSetup(x, y, z, speed float32, relative bool) leg.Status {
	if relative {
		s.target = s.target.Add(vec3.New(x, y, z))
	} else {
		s.target = vec3.New(x, y, z)
	}
	s.moving = true
	return leg.OK
}

func (s *stubLeg) LinearMovePerform() { s.moving = false }

func (s *stubLeg) Wait(ms uint32) {
	s.waitMs = ms
	s.moving = ms > 0
}

func (s *stubLeg) IsMoving() bool { return s.moving }

func (s *stubLeg) ForwardKinematics(a0, a1, a2 float32) vec3.Vec3 {
	return vec3.New(a0, a1, a2)
}

func (s *stubLeg) DetachServo() { s.detached = true }

var _ leg.Leg = (*stubLeg)(nil)

func newTestHexapod(t *testing.T) (*Hexapod, [6]*stubLeg) {
	t.Helper()
	var legs [6]*stubLeg
	var ifaceLegs [6]leg.Leg
	for i := range legs {
		legs[i] = &stubLeg{}
		ifaceLegs[i] = legs[i]
	}
	h, err := New(ifaceLegs, config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h, legs
}

func TestIdleStaysNotBusy(t *testing.T) {
	h, _ := newTestHexapod(t)
	for i := uint32(0); i < 100; i++ {
		h.WalkPerform(i * 10)
		if h.IsBusy() {
			t.Fatalf("tick %d: expected idle hexapod to stay not-busy", i)
		}
	}
	if !h.StepQueue.IsEmpty() {
		t.Fatal("expected step queue to remain empty")
	}
}

func TestStandEnqueuesAndCompletes(t *testing.T) {
	h, _ := newTestHexapod(t)
	if err := h.Stand(); err != nil {
		t.Fatalf("Stand: %v", err)
	}
	if h.StepQueue.IsEmpty() {
		t.Fatal("expected Stand to enqueue a step")
	}

	now := uint32(0)
	h.WalkPerform(now)
	if !h.StepInProgress {
		t.Fatal("expected first tick to start the step")
	}

	// Stand is a rapid move: zero speed, zero move time, so the very
	// next tick both dispatches and completes it.
	h.WalkPerform(now + 10)
	if h.StepInProgress {
		t.Fatal("expected a rapid move to complete on its next tick")
	}
	if h.CurrentPos.Z != h.Geometry.StandHeight {
		t.Fatalf("current pos z = %v, want %v", h.CurrentPos.Z, h.Geometry.StandHeight)
	}
}

func TestShortPokeUsesLinearRelativeNoStep(t *testing.T) {
	h, _ := newTestHexapod(t)
	queuedMs := h.WalkSetup(pose.New(10, 0, 0, 0, 0, 0), 100)
	if queuedMs != 100 {
		t.Fatalf("queued ms = %d, want 100", queuedMs)
	}
	s, ok := h.StepQueue.Head()
	if !ok {
		t.Fatal("expected one step queued")
	}
	if s.StepType != steptype.LinearMoveRelative {
		t.Fatalf("step type = %v, want LinearMoveRelative", s.StepType)
	}
}

func TestLongWalkAlternatesGroupsNoNeutral(t *testing.T) {
	h, _ := newTestHexapod(t)
	h.WalkSetup(pose.New(150, 0, 0, 0, 0, 0), 100)

	var sumX float32
	var last steptype.StepType = -1
	count := 0
	for !h.StepQueue.IsEmpty() {
		s, _ := h.StepQueue.Dequeue()
		if s.StepType == steptype.ReturnToNeutral {
			t.Fatal("did not expect a RETURN_TO_NEUTRAL from neutral stance")
		}
		if !s.StepType.IsGroup() {
			t.Fatalf("expected only group steps, got %v", s.StepType)
		}
		if last != -1 && last == s.StepType {
			t.Fatalf("expected alternating groups, got %v twice in a row", s.StepType)
		}
		last = s.StepType
		sumX += s.EndPos.X
		count++
	}
	if count < 2 {
		t.Fatalf("expected at least 2 group steps, got %d", count)
	}
	if diff := sumX - 150; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("sum of x displacements = %v, want 150", sumX)
	}
}

// TestReverseAfterForwardInsertsReturnToNeutral pins spec §8 scenario
// 5: planning a reversal from a body position that has already walked
// away from neutral must neutralize first, since a step back toward
// neutral with the current tripod assignment is shorter than the full
// reach envelope. The post-walk position is set directly rather than
// ticked out, since the executor's group-boundary frame flip (spec
// §9, pinned separately in TestGroupBoundaryFlipsCurrentPos) makes
// current_pos's literal value mid-gait an execution-frame artifact,
// not a stand-in for world displacement.
func TestReverseAfterForwardInsertsReturnToNeutral(t *testing.T) {
	h, _ := newTestHexapod(t)
	h.CurrentPos = pose.New(150, 0, 100, 0, 0, 0)

	h.WalkSetup(pose.New(-150, 0, 0, 0, 0, 0), 100)

	first, ok := h.StepQueue.Head()
	if !ok {
		t.Fatal("expected steps queued")
	}
	if first.StepType != steptype.ReturnToNeutral {
		t.Fatalf("first step = %v, want ReturnToNeutral", first.StepType)
	}
}

// TestGroupBoundaryFlipsCurrentPos pins spec §9's documented quirk: the
// executor negates current_pos.{x,y,yaw} when a dequeued step's group
// differs from the last one executed, before computing that step's
// end_pos.
func TestGroupBoundaryFlipsCurrentPos(t *testing.T) {
	h, _ := newTestHexapod(t)
	h.CurrentPos = pose.New(42, -7, 100, 0, 0, 9)
	h.LastStepType = steptype.Group0
	if err := h.StepQueue.Enqueue(step.NewBySpeed(pose.New(1, 0, 0, 0, 0, 0), 100, steptype.Group1)); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	h.WalkPerform(0)

	want := pose.New(-42, 7, 0, 0, 0, -9)
	if h.StartPos.X != want.X || h.StartPos.Y != want.Y || h.StartPos.Yaw != want.Yaw {
		t.Fatalf("start pos = %+v, want x/y/yaw flipped to %+v", h.StartPos, want)
	}
}

func TestComboMovePerformEmptyQueuesReportNoDispatch(t *testing.T) {
	h, _ := newTestHexapod(t)
	result := h.ComboMovePerform()
	if result>>8 != 0 {
		t.Fatalf("expected high byte 0 for empty leg queues, got %d", result>>8)
	}
}

func TestComboMovePerformDispatchesWaitAndMove(t *testing.T) {
	h, legs := newTestHexapod(t)
	if err := h.LegEnqueue(0, vec3.New(1, 2, 3), 50, false, 0); err != nil {
		t.Fatalf("LegEnqueue: %v", err)
	}
	if err := h.LegEnqueue(1, vec3.New(0, 0, 0), 0, false, 250); err != nil {
		t.Fatalf("LegEnqueue: %v", err)
	}

	result := h.ComboMovePerform()
	if result>>8 != 2 {
		t.Fatalf("expected 2 freshly dispatched legs, got %d", result>>8)
	}
	if !legs[0].moving {
		t.Fatal("expected leg 0 to start a linear move")
	}
	if legs[1].waitMs != 250 {
		t.Fatalf("leg 1 wait = %d, want 250", legs[1].waitMs)
	}
}

func TestRunSpeedAdvancesWalkAndLegQueues(t *testing.T) {
	h, legs := newTestHexapod(t)
	if err := h.LegEnqueue(2, vec3.New(1, 1, 1), 50, true, 0); err != nil {
		t.Fatalf("LegEnqueue: %v", err)
	}
	if err := h.Stand(); err != nil {
		t.Fatalf("Stand: %v", err)
	}

	h.RunSpeed(0)
	if !legs[2].moving {
		t.Fatal("expected RunSpeed to dispatch the queued leg move")
	}
	if !h.StepInProgress {
		t.Fatal("expected RunSpeed to start the queued Stand step")
	}

	h.RunSpeed(10)
	if legs[2].moving {
		t.Fatal("expected RunSpeed's LinearMovePerform to finish the in-flight leg move")
	}
}

func TestRapidMoveRoundTrips(t *testing.T) {
	h, _ := newTestHexapod(t)
	target := pose.New(5, -5, 160, 0, 0, 0)
	if status := h.RapidMove(target); status != kinematics.OK {
		t.Fatalf("RapidMove status = %v, want OK", status)
	}
	if h.CurrentPos != target {
		t.Fatalf("current pos = %+v, want %+v", h.CurrentPos, target)
	}
}

func TestGetMaxStepMagnitudeAtNeutral(t *testing.T) {
	h, _ := newTestHexapod(t)
	h.CurrentPos = pose.New(0, 0, 100, 0, 0, 0)
	if got := h.GetMaxStepMagnitude(); got != 75 {
		t.Fatalf("max step magnitude = %v, want 75", got)
	}
}

func TestGetDistance(t *testing.T) {
	h, _ := newTestHexapod(t)
	h.CurrentPos = pose.New(0, 0, 0, 0, 0, 0)
	got := h.GetDistance(pose.New(3, 4, 0, 0, 0, 0))
	if got != 5 {
		t.Fatalf("distance = %v, want 5", got)
	}
}

// TestGetDistanceIgnoresZAndAngles pins the original firmware's
// getDistance formula (sqrt(dx*dx+dy*dy) only): a target differing
// only in z, roll, pitch or yaw must report zero distance.
func TestGetDistanceIgnoresZAndAngles(t *testing.T) {
	h, _ := newTestHexapod(t)
	h.CurrentPos = pose.New(0, 0, 0, 0, 0, 0)
	got := h.GetDistance(pose.New(0, 0, 200, 300, 400, 500))
	if got != 0 {
		t.Fatalf("distance = %v, want 0 (z/roll/pitch/yaw must not contribute)", got)
	}
}

// TestVelocityStreamingAppendsGroupSteps runs the full tick loop with a
// standing +x velocity command and an empty queue (spec §8 scenario
// 6): every idle tick with nothing queued appends one group step whose
// direction is +x, and both tripods get used as the body advances.
func TestVelocityStreamingAppendsGroupSteps(t *testing.T) {
	h, _ := newTestHexapod(t)
	h.CurrentPos = pose.New(0, 0, 100, 0, 0, 0)
	h.SetWalkVelocity(pose.New(50, 0, 0, 0, 0, 0))

	seenGroup0, seenGroup1 := false, false
	wasInProgress := false
	for tick := uint32(0); tick < 5000; tick += 20 {
		h.WalkPerform(tick)

		if h.StepInProgress && !wasInProgress {
			if h.CurrentStepType == steptype.Group0 {
				seenGroup0 = true
			} else if h.CurrentStepType == steptype.Group1 {
				seenGroup1 = true
			} else {
				t.Fatalf("tick %d: expected a group step from velocity streaming, got %v", tick, h.CurrentStepType)
			}
		}
		wasInProgress = h.StepInProgress

		if seenGroup0 && seenGroup1 {
			return
		}
	}
	t.Fatalf("expected both tripods to be used, saw group0=%v group1=%v", seenGroup0, seenGroup1)
}

package leg

import "github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"

// stubLeg is a minimal in-memory Leg used to confirm the interface is
// satisfiable without a real servo transport. It is local to this
// package's tests.
type stubLeg struct {
	index    int
	target   vec3.Vec3
	moving   bool
	detached bool
}

func (s *stubLeg) Initialize(legIndex int) { s.index = legIndex }

func (s *stubLeg) RapidMove(x, y, z float32) bool {
	s.target = vec3.New(x, y, z)
	return true
}

func (s *stubLeg) LinearMoveSetup(x, y, z, speed float32, relative bool) Status {
	if relative {
		s.target = s.target.Add(vec3.New(x, y, z))
	} else {
		s.target = vec3.New(x, y, z)
	}
	s.moving = true
	return OK
}

func (s *stubLeg) LinearMovePerform() { s.moving = false }

func (s *stubLeg) Wait(ms uint32) { s.moving = ms > 0 }

func (s *stubLeg) IsMoving() bool { return s.moving }

func (s *stubLeg) ForwardKinematics(a0, a1, a2 float32) vec3.Vec3 {
	return vec3.New(a0, a1, a2)
}

func (s *stubLeg) DetachServo() { s.detached = true }

var _ Leg = (*stubLeg)(nil)

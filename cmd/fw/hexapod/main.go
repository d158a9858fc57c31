// +build sam,xiao

package main

//go:generate tinygo flash -target=xiao

import (
	"machine"
	"time"

	"github.com/ManufacturedMotion/Hex3/config"
	"github.com/ManufacturedMotion/Hex3/pkg/hexapod"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
	"github.com/ManufacturedMotion/Hex3/pkg/robot/leg"
	"github.com/itohio/EasyRobot/pkg/robot/actuator/servos"
)

// servoLeg drives one three-joint coxa/femur/tibia assembly through
// the servos.Actuator this board's pins are wired to. The three-link
// arm inverse kinematics that would turn a leg-frame (x, y, z) target
// into joint angles is an external collaborator this spec does not
// define (spec §1); this adapter stands in with a direct passthrough
// until that solver is wired in, matching cmd/fw/limb's own
// bring-up-only stance on the same gap.
type servoLeg struct {
	motors servos.Actuator
	target vec3.Vec3
	moving bool
}

func newServoLeg(pins [3]uint32) (*servoLeg, error) {
	cfg := []servos.Motor{
		servos.NewDefaultConfig(pins[0]),
		servos.NewDefaultConfig(pins[1]),
		servos.NewDefaultConfig(pins[2]),
	}
	motors, err := servos.New(cfg)
	if err != nil {
		return nil, err
	}
	return &servoLeg{motors: motors}, nil
}

func (s *servoLeg) Initialize(legIndex int) {}

func (s *servoLeg) RapidMove(x, y, z float32) bool {
	s.target = vec3.New(x, y, z)
	return s.motors.Set([]float32{x, y, z}) == nil
}

func (s *servoLeg) LinearMoveSetup(x, y, z, speed float32, relative bool) leg.Status {
	if relative {
		s.target = s.target.Add(vec3.New(x, y, z))
	} else {
		s.target = vec3.New(x, y, z)
	}
	s.moving = true
	return leg.OK
}

func (s *servoLeg) LinearMovePerform() {
	s.motors.Set([]float32{s.target.X, s.target.Y, s.target.Z})
	s.moving = false
}

func (s *servoLeg) Wait(ms uint32) { s.moving = ms > 0 }

func (s *servoLeg) IsMoving() bool { return s.moving }

func (s *servoLeg) ForwardKinematics(a0, a1, a2 float32) vec3.Vec3 {
	return vec3.New(a0, a1, a2)
}

func (s *servoLeg) DetachServo() {}

var _ leg.Leg = (*servoLeg)(nil)

// legPins gives each leg's coxa/femur/tibia pin triple, front-left
// around to back-left matching config.Default()'s leg ordering.
var legPins = [6][3]uint32{
	{uint32(machine.D0), uint32(machine.D1), uint32(machine.D2)},
	{uint32(machine.D3), uint32(machine.D4), uint32(machine.D5)},
	{uint32(machine.D6), uint32(machine.D7), uint32(machine.D8)},
	{uint32(machine.D9), uint32(machine.D10), uint32(machine.D11)},
	{uint32(machine.D12), uint32(machine.D13), uint32(machine.A0)},
	{uint32(machine.A1), uint32(machine.A2), uint32(machine.A3)},
}

type millisClock struct{ start time.Time }

func (c millisClock) NowMs() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func blink(led machine.Pin, t time.Duration) {
	for {
		time.Sleep(t)
		led.Set(!led.Get())
	}
}

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var legs [6]leg.Leg
	for i, pins := range legPins {
		l, err := newServoLeg(pins)
		if err != nil {
			blink(led, 1500*time.Millisecond)
		}
		legs[i] = l
	}

	h, err := hexapod.New(legs, config.Default())
	if err != nil {
		blink(led, 250*time.Millisecond)
	}

	clock := millisClock{start: time.Now()}
	h.Initialize(clock, 50)
	h.Stand()

	for {
		h.RunSpeed(clock.NowMs())
		led.Set(h.IsBusy())
		time.Sleep(20 * time.Millisecond)
	}
}

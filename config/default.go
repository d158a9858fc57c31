package config

import "github.com/chewxy/math32"

// Default returns the hard-coded Geometry used when no configuration
// file is available (the Teensy/TinyGo firmware target has no
// filesystem to load one from). Leg offsets follow the same
// alternating front/middle/back layout used across this module's test
// fixtures; motion limits are spec §6's literal constants.
func Default() *Geometry {
	angles := [6]float32{-2.0, -1.0, 0, 1.0, 2.0, 3.0}
	xoff := [6]float32{-51, 51, 66, 51, -51, -66}

	var g Geometry
	for i := range g.Legs {
		g.Legs[i] = LegGeometry{XOffset: xoff[i], YOffset: -19, HomeYaw: angles[i]}
	}

	g.StanceX, g.StanceY, g.StanceZ = 0, 0, 0
	g.StandHeight = 150
	g.SitHeight = 0

	g.MaxStepMagnitude = 75
	g.ZMax = 200
	g.RollMax = math32.Pi / 8 * 100
	g.PitchMax = math32.Pi / 8 * 100
	g.XMaxNoStep = 20
	g.YMaxNoStep = 20
	g.YawMaxNoStep = math32.Pi / 32 * 100
	g.MaxStepHeight = 50
	g.MaxStepSpeed = 300
	g.StepToNeutralSpeed = 200

	return &g
}

// Package config loads the hexapod's body geometry and motion limits
// from YAML, with a hard-coded Default for the firmware target where
// no filesystem is available.
//
// Grounded on cmd/spectrometer/internal/config/loader.go's
// Loader.Load/LoadFromReader shape, trimmed to the one format this
// project actually ships configuration in (spec §10.3 calls the
// teacher's pb/json branches unneeded here: there is no wire format
// and no protobuf schema for hexapod geometry).
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LegGeometry is one leg's fixed mounting offset and home yaw, the
// YAML-serializable counterpart of kinematics.LegMount (spec §3).
type LegGeometry struct {
	XOffset float32 `yaml:"x_offset"`
	YOffset float32 `yaml:"y_offset"`
	HomeYaw float32 `yaml:"home_yaw"`
}

// Geometry is the full set of body geometry and motion-limit constants
// a Hexapod is built from (spec §6 "Constants (configuration, not
// wire)").
type Geometry struct {
	Legs         [6]LegGeometry `yaml:"legs"`
	StanceX      float32        `yaml:"stance_x"`
	StanceY      float32        `yaml:"stance_y"`
	StanceZ      float32        `yaml:"stance_z"`

	// StandHeight and SitHeight are the two named poses sit()/stand()
	// enqueue (§12 supplement): z for a standing stance and z for legs
	// flat on the ground, respectively.
	StandHeight float32 `yaml:"stand_height"`
	SitHeight   float32 `yaml:"sit_height"`

	MaxStepMagnitude   float32 `yaml:"max_step_magnitude"`
	ZMax               float32 `yaml:"z_max"`
	RollMax            float32 `yaml:"roll_max"`
	PitchMax           float32 `yaml:"pitch_max"`
	XMaxNoStep         float32 `yaml:"x_max_no_step"`
	YMaxNoStep         float32 `yaml:"y_max_no_step"`
	YawMaxNoStep       float32 `yaml:"yaw_max_no_step"`
	MaxStepHeight      float32 `yaml:"max_step_height"`
	MaxStepSpeed       float32 `yaml:"max_step_speed"`
	StepToNeutralSpeed float32 `yaml:"step_to_neutral_speed"`
}

// Loader loads a Geometry from YAML.
type Loader struct{}

// NewLoader builds a Loader. There is no per-instance state today; the
// constructor exists so callers follow the same New(...) shape the
// rest of this module uses.
func NewLoader() *Loader { return &Loader{} }

// Load reads and parses a Geometry from the file at path.
func (l *Loader) Load(path string) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()
	return l.LoadFromReader(f)
}

// LoadFromReader parses a Geometry from r.
func (l *Loader) LoadFromReader(r io.Reader) (*Geometry, error) {
	var g Geometry
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	return &g, nil
}

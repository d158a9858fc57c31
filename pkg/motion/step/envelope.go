// Package step implements the body-level step queue entries, the
// reach-envelope function, and the maximum-step-in-a-direction
// quadratic the walk planner consults (spec §4.5.1, §4.5.2).
//
// Grounded on pkg/core/math/control/motion/planner's pattern of small,
// pure geometry helpers feeding a stateful planner, and on
// pkg/core/math.Quad for the general shape of a quadratic solve —
// generalized here to the spec's exact branch rule rather than reused
// verbatim, since Quad's clamp-near-zero-to-zero-roots semantics do not
// match the spec's single-root/positive-root selection.
package step

import (
	"github.com/chewxy/math32"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
)

// DefaultMaxStepMagnitude is the nominal per-step reach at neutral
// stance (z=100, roll=pitch=0), spec §6 constant MAX_STEP_MAGNITUDE.
// It is the fallback used wherever a caller has no configured
// Geometry.MaxStepMagnitude to thread through (tests, and any caller
// exercising the envelope function directly); callers wired to a
// Hexapod pass its configured value instead (spec §10.3).
const DefaultMaxStepMagnitude = 75

// NeutralZ is the nominal stance height the envelope function measures
// z deviation against.
const NeutralZ = 100

// MaxStepMagnitudeAt returns M(q): the largest step magnitude
// admissible given the composed pose q the planner would see after
// every currently queued step executes, and the configured nominal
// reach maxStepMagnitude (spec §4.5.1).
//
//	M(q) = MAX_STEP_MAGNITUDE − sqrt(((q.z−100)/2)² + q.roll² + q.pitch²) / 2
func MaxStepMagnitudeAt(q pose.Pose, maxStepMagnitude float32) float32 {
	halfZ := (q.Z - NeutralZ) / 2
	return maxStepMagnitude - math32.Sqrt(halfZ*halfZ+q.Roll*q.Roll+q.Pitch*q.Pitch)/2
}

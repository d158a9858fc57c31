package step

import (
	"github.com/chewxy/math32"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
)

// DiscriminantEpsilon is the tolerance below which the quadratic's
// discriminant is treated as exactly zero, yielding the single
// repeated root instead of picking between two nearly-identical ones
// (spec §4.5.2).
const DiscriminantEpsilon = 1e-3

// MaxStepInDirection solves for the scalar s such that
// |a + s·b| = M(q), where a is the projected (x, y, yaw) queue
// end pose (negated first if flipped) and b is the unit projected
// direction of travel (spec §4.5.2).
//
// Grounded on pkg/core/math.Quad's general quadratic shape, but with
// the spec's own branch rule: a negative discriminant yields 0, a
// near-zero discriminant yields the single root −B/(2A), and otherwise
// the root (−B+√Δ)/(2A) is returned if it is positive, else the root
// (−B−√Δ)/(2A). The result is negative when both roots are negative.
func MaxStepInDirection(q pose.Pose, dir pose.Pose, flipped bool, maxStepMagnitude float32) float32 {
	a := q.XYYawProjection()
	if flipped {
		a = a.Neg()
	}
	b := dir.XYYawProjection().Unit()

	A := b.SumSqr()
	B := 2 * dot(a, b)
	m := MaxStepMagnitudeAt(q, maxStepMagnitude)
	C := a.SumSqr() - m*m

	discriminant := B*B - 4*A*C

	switch {
	case discriminant < 0:
		return 0
	case math32.Abs(discriminant) <= DiscriminantEpsilon:
		return -B / (2 * A)
	default:
		sqrtDisc := math32.Sqrt(discriminant)
		plus := (-B + sqrtDisc) / (2 * A)
		if plus > 0 {
			return plus
		}
		return (-B - sqrtDisc) / (2 * A)
	}
}

// dot returns the dot product of the (x, y, yaw) components of two
// already-projected poses.
func dot(a, b pose.Pose) float32 {
	return a.X*b.X + a.Y*b.Y + a.Yaw*b.Yaw
}

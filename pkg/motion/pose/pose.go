// Package pose implements the six-degree-of-freedom body pose algebra
// the motion core interpolates and composes on every tick.
//
// Pose generalizes pkg/motion/vec3's (x, y, z) algebra to six components.
// Angular components (roll, pitch, yaw) are stored in hundredths of a
// radian so their magnitudes share numeric scale with the millimetre
// linear components: this is load-bearing for the reach-envelope
// quadratic and for Pose.Magnitude, both of which treat all six
// components as commensurate. Callers must divide by AngleScale before
// calling a trig function and keep all other arithmetic in the scaled
// representation.
package pose

import "github.com/chewxy/math32"

// AngleScale converts a stored angular component to radians: radians =
// stored / AngleScale.
const AngleScale = 100

// ZeroMagnitudeEpsilon mirrors vec3.ZeroMagnitudeEpsilon for Pose.Unit.
const ZeroMagnitudeEpsilon = 1e-3

// EqEpsilon is the default componentwise tolerance used by Pose.Eq.
const EqEpsilon = 1e-6

// Pose is a linear (X, Y, Z) position in millimetres plus an angular
// (Roll, Pitch, Yaw) orientation in hundredths of a radian.
type Pose struct {
	X, Y, Z          float32
	Roll, Pitch, Yaw float32
}

// New builds a Pose from its six components.
func New(x, y, z, roll, pitch, yaw float32) Pose {
	return Pose{X: x, Y: y, Z: z, Roll: roll, Pitch: pitch, Yaw: yaw}
}

// Add returns p + o, componentwise.
func (p Pose) Add(o Pose) Pose {
	return Pose{
		X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z,
		Roll: p.Roll + o.Roll, Pitch: p.Pitch + o.Pitch, Yaw: p.Yaw + o.Yaw,
	}
}

// Sub returns p - o, componentwise.
func (p Pose) Sub(o Pose) Pose {
	return Pose{
		X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z,
		Roll: p.Roll - o.Roll, Pitch: p.Pitch - o.Pitch, Yaw: p.Yaw - o.Yaw,
	}
}

// Neg returns -p.
func (p Pose) Neg() Pose {
	return Pose{-p.X, -p.Y, -p.Z, -p.Roll, -p.Pitch, -p.Yaw}
}

// MulC returns p scaled by c.
func (p Pose) MulC(c float32) Pose {
	return Pose{p.X * c, p.Y * c, p.Z * c, p.Roll * c, p.Pitch * c, p.Yaw * c}
}

// NegXYYaw returns p with X, Y and Yaw negated and the remaining
// components untouched. This is the "frame flip" the executor applies
// to current_pos.{x,y,yaw} at a GROUP0/GROUP1 boundary (spec §9).
func (p Pose) NegXYYaw() Pose {
	p.X, p.Y, p.Yaw = -p.X, -p.Y, -p.Yaw
	return p
}

// SumSqr returns the sum of the squares of all six components.
func (p Pose) SumSqr() float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z + p.Roll*p.Roll + p.Pitch*p.Pitch + p.Yaw*p.Yaw
}

// DistanceXY returns the planar (x, y) Euclidean distance between p and
// o, ignoring z and all three angular components.
func (p Pose) DistanceXY(o Pose) float32 {
	dx, dy := p.X-o.X, p.Y-o.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// Magnitude returns the Euclidean norm of all six components.
func (p Pose) Magnitude() float32 {
	return math32.Sqrt(p.SumSqr())
}

// Unit returns p scaled to unit magnitude; a near-zero pose (magnitude
// below ZeroMagnitudeEpsilon) yields the zero pose.
func (p Pose) Unit() Pose {
	m := p.Magnitude()
	if m < ZeroMagnitudeEpsilon {
		return Pose{}
	}
	return p.MulC(1 / m)
}

// XYYawProjection returns p with Z, Roll and Pitch cleared to zero,
// the planar+yaw view the walk planner reasons about (spec §3).
func (p Pose) XYYawProjection() Pose {
	return Pose{X: p.X, Y: p.Y, Yaw: p.Yaw}
}

// Eq reports whether p and o are componentwise equal within EqEpsilon.
func (p Pose) Eq(o Pose) bool {
	const eps = EqEpsilon
	return math32.Abs(p.X-o.X) <= eps &&
		math32.Abs(p.Y-o.Y) <= eps &&
		math32.Abs(p.Z-o.Z) <= eps &&
		math32.Abs(p.Roll-o.Roll) <= eps &&
		math32.Abs(p.Pitch-o.Pitch) <= eps &&
		math32.Abs(p.Yaw-o.Yaw) <= eps
}

// Lerp linearly interpolates between a and b at fraction t (not clamped
// to [0,1] by this function; callers clamp the tick progress upstream).
func Lerp(a, b Pose, t float32) Pose {
	return a.Add(b.Sub(a).MulC(t))
}

// RollRad, PitchRad and YawRad recover radians from the stored
// hundredths-of-radian angular components (spec §4.3 step 2).
func (p Pose) RollRad() float32  { return p.Roll / AngleScale }
func (p Pose) PitchRad() float32 { return p.Pitch / AngleScale }
func (p Pose) YawRad() float32   { return p.Yaw / AngleScale }

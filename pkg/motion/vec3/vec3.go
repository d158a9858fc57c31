// Package vec3 implements 3-element vector algebra for the motion core.
//
// Vec3 is a plain value type: every method returns a new Vec3 rather than
// mutating the receiver, matching the "plain values, no shared ownership"
// data model the motion core is built on. The method set (Add, Sub, MulC,
// Magnitude, Dot) mirrors github.com/chewxy/math32-based
// Vector3D in the wider EasyRobot math stack; RotateYaw is new, needed by
// the leg mounting adapter and nowhere in that stack.
package vec3

import "github.com/chewxy/math32"

// ZeroMagnitudeEpsilon is the threshold below which Unit treats a vector
// as the zero vector rather than dividing by a near-zero magnitude.
const ZeroMagnitudeEpsilon = 1e-3

// EqEpsilon is the default componentwise tolerance used by Vec3.Eq.
const EqEpsilon = 1e-6

// Vec3 is an ordered (x, y, z) triple of reals.
type Vec3 struct {
	X, Y, Z float32
}

// New builds a Vec3 from components.
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// MulC returns v scaled by c.
func (v Vec3) MulC(c float32) Vec3 {
	return Vec3{v.X * c, v.Y * c, v.Z * c}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// SumSqr returns the sum of squared components (magnitude squared).
func (v Vec3) SumSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the Euclidean norm of v.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.SumSqr())
}

// Unit returns v scaled to unit length. A vector whose magnitude is below
// ZeroMagnitudeEpsilon yields the zero vector rather than a divide-by-
// near-zero blowup.
func (v Vec3) Unit() Vec3 {
	m := v.Magnitude()
	if m < ZeroMagnitudeEpsilon {
		return Vec3{}
	}
	return v.MulC(1 / m)
}

// RotateYaw rotates v by theta radians about the z axis. This is exact
// trigonometric rotation, not a small-angle approximation, per the
// kinematics adapter's requirement to rotate by arbitrary home yaws.
func (v Vec3) RotateYaw(theta float32) Vec3 {
	s, c := math32.Sincos(theta)
	return Vec3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// Eq reports whether v and o are componentwise equal within EqEpsilon.
func (v Vec3) Eq(o Vec3) bool {
	return math32.Abs(v.X-o.X) <= EqEpsilon &&
		math32.Abs(v.Y-o.Y) <= EqEpsilon &&
		math32.Abs(v.Z-o.Z) <= EqEpsilon
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float32 {
	return v.Sub(o).Magnitude()
}

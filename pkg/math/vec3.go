// Package math provides the vector and matrix types shared by the scene graph.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / scalar. Division by zero yields the zero vector.
func (v Vec3) Div(s float32) Vec3 {
	if s == 0 {
		return Vec3{}
	}
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	n, _ := v.NormalizeOK()
	return n
}

// NormalizeOK is Normalize with an explicit degeneracy flag.
// ok is false when the length is below Epsilon.
func (v Vec3) NormalizeOK() (n Vec3, ok bool) {
	l := v.Length()
	if l < Epsilon {
		return Vec3{}, false
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, true
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// ApproxEqual reports whether every component differs by at most tol.
func (v Vec3) ApproxEqual(other Vec3, tol float32) bool {
	return math32.Abs(v.X-other.X) <= tol &&
		math32.Abs(v.Y-other.Y) <= tol &&
		math32.Abs(v.Z-other.Z) <= tol
}

// AngleBetween returns the angle between v and other in degrees.
// Either vector having zero length gives 0.
func (v Vec3) AngleBetween(other Vec3) float32 {
	m1, m2 := v.Length(), other.Length()
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := Clamp(v.Dot(other)/(m1*m2), -1, 1)
	return RadToDeg(math32.Acos(cos))
}

// TriangleArea returns the area of the triangle spanned by v and other.
func (v Vec3) TriangleArea(other Vec3) float32 {
	return 0.5 * v.Cross(other).Length()
}

// RotateAround rotates v by angleDeg degrees about the unit axis using
// Rodrigues' formula: v·cosθ + (axis×v)·sinθ + axis·(axis·v)·(1−cosθ).
func (v Vec3) RotateAround(axis Vec3, angleDeg float32) Vec3 {
	s, c := math32.Sincos(DegToRad(angleDeg))
	return v.Scale(c).
		Add(axis.Cross(v).Scale(s)).
		Add(axis.Scale(axis.Dot(v) * (1 - c)))
}

// Array returns the components as a fixed array (uniform upload order).
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

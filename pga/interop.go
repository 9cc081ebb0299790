package pga

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// Quat returns the unit quaternion for a rotor around a line through the
// origin. Only the scalar and Euclidean bivector parts of m are read.
// RotorAxis(angle, x, y, z) and the quaternion
// cos(angle/2) + sin(angle/2) (xi + yj + zk) rotate vectors identically.
func (m Multivector) Quat() quat.Number {
	return quat.Number{
		Real: m[Scalar],
		Imag: -m[E23],
		Jmag: -m[E31],
		Kmag: -m[E12],
	}
}

// RotorFromQuat is the inverse of Multivector.Quat.
func RotorFromQuat(q quat.Number) Multivector {
	var m Multivector
	m[Scalar] = q.Real
	m[E23], m[E31], m[E12] = -q.Imag, -q.Jmag, -q.Kmag
	return m
}

// Mat4 returns the homogeneous transformation matrix of the motor m, so
// that m.Mat4().Mul4x1(Vec4{x, y, z, 1}) is the point Sandwich(m,
// Point(x, y, z)). For a unit motor the bottom row is (0, 0, 0, 1).
func (m Multivector) Mat4() mgl64.Mat4 {
	col := func(x Multivector) mgl64.Vec4 {
		y := Sandwich(m, x)
		return mgl64.Vec4{y[E032], y[E013], y[E021], y[E123]}
	}
	return mgl64.Mat4FromCols(
		col(Ideal(1, 0, 0)), col(Ideal(0, 1, 0)), col(Ideal(0, 0, 1)),
		col(e123),
	)
}

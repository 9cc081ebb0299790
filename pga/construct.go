package pga

import (
	"errors"
	"math"
)

// ErrZeroNorm is returned when normalizing a multivector whose norm is
// zero, such as an ideal line or the zero multivector.
var ErrZeroNorm = errors.New("pga: cannot normalize a multivector with zero norm")

// Point returns the homogeneous point (x, y, z) with unit weight.
func Point(x, y, z float64) Multivector {
	var m Multivector
	m[E123] = 1
	m[E032] = x
	m[E013] = y
	m[E021] = z
	return m
}

// Ideal returns the point at infinity in the direction (x, y, z).
func Ideal(x, y, z float64) Multivector {
	var m Multivector
	m[E032] = x
	m[E013] = y
	m[E021] = z
	return m
}

// Plane returns the plane a*x + b*y + c*z + d = 0.
func Plane(a, b, c, d float64) Multivector {
	var m Multivector
	m[E1] = a
	m[E2] = b
	m[E3] = c
	m[E0] = d
	return m
}

// Norm returns sqrt(|<a * Conjugate(a)>_0|). The absolute value absorbs
// small negative rounding errors.
func (a Multivector) Norm() float64 {
	return math.Sqrt(math.Abs(a.Mul(a.Conjugate())[Scalar]))
}

// INorm returns the ideal norm of a, the norm of its dual. Ideal elements
// have a zero Norm but a non-zero INorm.
func (a Multivector) INorm() float64 { return a.Dual().Norm() }

// Normalized returns a / Norm(a), or ErrZeroNorm.
func (a Multivector) Normalized() (Multivector, error) {
	n := a.Norm()
	if n == 0 {
		return Multivector{}, ErrZeroNorm
	}
	return a.Scale(1 / n), nil
}

// Rotor returns the motor rotating by angle around the Euclidean line.
func Rotor(angle float64, line Multivector) (Multivector, error) {
	l, err := line.Normalized()
	if err != nil {
		return Multivector{}, err
	}
	s, c := math.Sincos(angle / 2)
	return l.Scale(s).AddScalar(c), nil
}

// Translator returns the motor translating by dist along the ideal line.
// The direction of travel is the direction of the ideal line's dual:
// Translator(d, e1 * e0) moves points towards +x.
func Translator(dist float64, line Multivector) Multivector {
	return line.Scale(dist / 2).AddScalar(1)
}

// RotorAxis returns the rotor which turns counter-clockwise by angle
// around the axis (x, y, z) through the origin.
func RotorAxis(angle, x, y, z float64) (Multivector, error) {
	var l Multivector
	l[E23], l[E31], l[E12] = -x, -y, -z
	return Rotor(angle, l)
}

// TranslatorAlong returns the translator which moves points by dist along
// the direction (x, y, z).
func TranslatorAlong(dist, x, y, z float64) (Multivector, error) {
	var l Multivector
	l[E01], l[E02], l[E03] = -x, -y, -z
	n := l.INorm()
	if n == 0 {
		return Multivector{}, ErrZeroNorm
	}
	return Translator(dist, l.Scale(1/n)), nil
}

// ProjectOntoPlane returns the orthogonal projection of the point p onto
// the plane. The result is homogeneous and not normalized.
func ProjectOntoPlane(p, plane Multivector) Multivector {
	return plane.Dot(p).Mul(plane)
}

// Circle returns the motor placing a point on a circle of the given radius
// around line as t goes from 0 to 1.
func Circle(t, radius float64, line Multivector) (Multivector, error) {
	r, err := Rotor(2*math.Pi*t, line)
	if err != nil {
		return Multivector{}, err
	}
	return r.Mul(Translator(radius, e1.Mul(e0))), nil
}

// Torus returns the product of two circle motors. Sweeping s and t over
// [0, 1] traces out a torus.
func Torus(s, t, r1 float64, l1 Multivector, r2 float64, l2 Multivector) (Multivector, error) {
	c2, err := Circle(s, r2, l2)
	if err != nil {
		return Multivector{}, err
	}
	c1, err := Circle(t, r1, l1)
	if err != nil {
		return Multivector{}, err
	}
	return c2.Mul(c1), nil
}

const (
	torusMinorRadius = 0.25
	torusMajorRadius = 0.6
)

// PointOnTorus returns the point at (s, t) on a torus with radii 0.6 and
// 0.25, found by sandwiching the origin with the torus motor.
func PointOnTorus(s, t float64) (Multivector, error) {
	to, err := Torus(
		s, t, torusMinorRadius, e1.Mul(e2), torusMajorRadius, e1.Mul(e3),
	)
	if err != nil {
		return Multivector{}, err
	}
	return Sandwich(to, e123), nil
}

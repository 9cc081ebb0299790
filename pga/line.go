package pga

import (
	"github.com/phil-mansfield/landy/geom"
)

// FromPoint returns the PGA point at p.
func FromPoint(p geom.Point) Multivector { return Point(p.X, p.Y, p.Z) }

// Coords returns the Euclidean coordinates of the point p. ok is false if
// p has zero weight, i.e. if it is an ideal point.
func Coords(p Multivector) (c geom.Point, ok bool) {
	w := p.Get(E123)
	if w == 0 {
		return geom.Point{}, false
	}
	return direction(p).Scale(1 / w), true
}

// Join returns the line through the points p and q, oriented from p to q.
func Join(p, q Multivector) Multivector { return p.Vee(q) }

// LineFromGeom converts a classical line into a PGA line by joining two of
// its points.
func LineFromGeom(l geom.Line) Multivector {
	return Join(FromPoint(l.P), FromPoint(l.At(1)))
}

// LineFromPlucker builds a PGA line from Plücker coordinates. The line
// bivector stores the negated moment in its e0i part and the negated
// direction in its Euclidean part.
func LineFromPlucker(p geom.PluckerVec) Multivector {
	var l Multivector
	l[E01], l[E02], l[E03] = -p.V.X, -p.V.Y, -p.V.Z
	l[E23], l[E31], l[E12] = -p.U.X, -p.U.Y, -p.U.Z
	return l
}

// direction returns the Euclidean direction of the ideal point d.
func direction(d Multivector) geom.Point {
	return geom.Point{X: d.Get(E032), Y: d.Get(E013), Z: d.Get(E021)}
}

// IsParallel returns true if the lines a and b are parallel to within
// geom.Eps. For lines built with LineFromGeom this is the same test as
// geom.IsParallel.
func IsParallel(a, b Multivector) bool {
	return geom.Norm(direction(commonDirection(a, b))) < geom.Eps
}

// commonDirection returns the ideal point in the direction of the common
// normal of a and b. Its coordinates are the cross product of the lines'
// directions.
func commonDirection(a, b Multivector) Multivector {
	return Commutator(a, b).Wedge(e0)
}

// ClosestPoints returns the points on a and on b which are closest to one
// another, as homogeneous PGA points. ok is false if the lines are
// parallel.
//
// The common normal n of a and b meets both lines. Joining b with the
// direction of n gives the plane containing b and n, which meets a at the
// first point, and vice versa.
func ClosestPoints(a, b Multivector) (c1, c2 Multivector, ok bool) {
	d := commonDirection(a, b)
	if geom.Norm(direction(d)) < geom.Eps {
		return Multivector{}, Multivector{}, false
	}
	c1 = a.Wedge(b.Vee(d))
	c2 = b.Wedge(a.Vee(d))
	return c1, c2, true
}

// Midpoint returns the midpoint of the shortest segment between the lines
// a and b. ok is false if the lines are parallel.
func Midpoint(a, b Multivector) (mid geom.Point, ok bool) {
	c1, c2, ok := ClosestPoints(a, b)
	if !ok {
		return geom.Point{}, false
	}
	p1, ok1 := Coords(c1)
	p2, ok2 := Coords(c2)
	if !ok1 || !ok2 {
		return geom.Point{}, false
	}
	return p1.Add(p2).Scale(0.5), true
}

package geom

import (
	"math"

	"github.com/phil-mansfield/landy/mat"
)

// Line is an infinite line through P in the direction Dir. Dir does not
// need to be a unit vector, but a zero Dir makes every test below
// degenerate.
type Line struct {
	P, Dir Point
}

// LineThrough returns the line passing through p and q.
func LineThrough(p, q Point) Line { return Line{P: p, Dir: q.Sub(p)} }

// LineAlong returns the line passing through p in the direction dir.
func LineAlong(p, dir Point) Line { return Line{P: p, Dir: dir} }

// At returns P + t * Dir.
func (l Line) At(t float64) Point { return l.P.Add(l.Dir.Scale(t)) }

// IsParallel returns true if the directions of a and b are parallel to
// within Eps.
func IsParallel(a, b Line) bool {
	return epsEq(Norm(Cross(a.Dir, b.Dir)), 0, Eps)
}

// IsSkew returns true if a and b neither intersect nor are parallel. The
// permuted inner product of the lines' Plücker coordinates is the triple
// product (a.P - b.P) . (a.Dir x b.Dir), which is proportional to the
// volume of the tetrahedron the two lines span. See
// https://en.wikipedia.org/wiki/Skew_lines.
func IsSkew(a, b Line) bool {
	volume := a.Plucker().PDot(b.Plucker())
	return !epsEq(volume, 0, Eps)
}

// ClosestPoints returns the point c1 on a and the point c2 on b which are
// closest to one another. ok is false if the lines are parallel, in which
// case there is no unique answer.
func ClosestPoints(a, b Line) (c1, c2 Point, ok bool) {
	if IsParallel(a, b) {
		return Point{}, Point{}, false
	}

	n := Cross(a.Dir, b.Dir) // normal to both lines
	n1 := Cross(a.Dir, n)    // normal to a and n
	n2 := Cross(b.Dir, n)    // normal to b and n

	c1 = a.At(Dot(b.P.Sub(a.P), n2) / Dot(a.Dir, n2))
	c2 = b.At(Dot(a.P.Sub(b.P), n1) / Dot(b.Dir, n1))
	return c1, c2, true
}

// Midpoint returns the midpoint of the shortest segment between a and b.
// If the lines intersect, this is the intersection point. ok is false if
// the lines are parallel.
func Midpoint(a, b Line) (mid Point, ok bool) {
	c1, c2, ok := ClosestPoints(a, b)
	if !ok {
		return Point{}, false
	}
	return c1.Add(c2).Scale(0.5), true
}

// MidpointLU computes the same point as Midpoint by solving the normal
// equations for the line parameters s and t,
//
//	(a.P + s a.Dir - b.P - t b.Dir) . a.Dir = 0
//	(a.P + s a.Dir - b.P - t b.Dir) . b.Dir = 0,
//
// with an LU decomposition. The determinant of the system is
// -|a.Dir x b.Dir|^2, so the lines are parallel when it is smaller in
// magnitude than Eps^2, the same test IsParallel makes.
func MidpointLU(a, b Line) (mid Point, ok bool) {
	dp := b.P.Sub(a.P)
	aa, ab, bb := Dot(a.Dir, a.Dir), Dot(a.Dir, b.Dir), Dot(b.Dir, b.Dir)
	M := mat.NewMatrix([]float64{
		aa, -ab,
		ab, -bb,
	}, 2, 2)

	luf, err := M.LU()
	if err != nil || math.Abs(luf.Determinant()) < Eps*Eps {
		return Point{}, false
	}
	st := []float64{Dot(dp, a.Dir), Dot(dp, b.Dir)}
	luf.SolveVector(st, st)

	return a.At(st[0]).Add(b.At(st[1])).Scale(0.5), true
}

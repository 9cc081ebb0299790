package geom

// PluckerVec holds the Plücker coordinates of a line. U is the line's
// direction and V is its moment, P x U, for any point P on the line.
type PluckerVec struct {
	U, V Point
}

// Plucker returns the Plücker coordinates of l.
func (l Line) Plucker() PluckerVec {
	return PluckerVec{U: l.Dir, V: Cross(l.P, l.Dir)}
}

// PDot computes the permuted inner product of two Plücker vectors,
// p1.U . p2.V + p2.U . p1.V. It vanishes exactly when the two lines are
// coplanar.
func (p1 PluckerVec) PDot(p2 PluckerVec) float64 {
	return Dot(p1.U, p2.V) + Dot(p2.U, p1.V)
}

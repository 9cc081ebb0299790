package pga

// Mul returns the geometric product a * b.
func (a Multivector) Mul(b Multivector) Multivector {
	return mulTable.apply(&a, &b)
}

// Wedge returns the outer product a ^ b. This is the meet: two planes meet
// in a line, a line and a plane meet in a point.
func (a Multivector) Wedge(b Multivector) Multivector {
	return wedgeTable.apply(&a, &b)
}

// Vee returns the regressive product a & b. This is the join: two points
// join into a line, a line and a point join into a plane.
func (a Multivector) Vee(b Multivector) Multivector {
	return veeTable.apply(&a, &b)
}

// Dot returns the symmetric inner product a | b, which keeps the grade
// |grade(a) - grade(b)| part of the product of every pair of blades.
func (a Multivector) Dot(b Multivector) Multivector {
	return dotTable.apply(&a, &b)
}

// Commutator returns (a*b - b*a) / 2. For two lines this is their common
// normal.
func Commutator(a, b Multivector) Multivector {
	return a.Mul(b).Sub(b.Mul(a)).Scale(0.5)
}

// Sandwich returns m * x * ~m.
func Sandwich(m, x Multivector) Multivector {
	return m.Mul(x).Mul(m.Reverse())
}

/*package pga implements the projective geometric algebra of 3D space,
R(3,0,1). Planes are vectors, lines are bivectors and points are
trivectors. The generator e0 squares to zero.

The algebra follows the conventions of De Keninck and Dorst's 3D PGA
cheat sheet: the outer product is the meet, the regressive product is the
join and rigid motions are applied with the sandwich product m x ~m.
*/
package pga

import (
	"fmt"
	"strings"
)

// Blade is the index of a basis blade inside a Multivector.
type Blade int

const (
	Scalar Blade = iota
	E0
	E1
	E2
	E3
	E01
	E02
	E03
	E12
	E31
	E23
	E021
	E013
	E032
	E123
	E0123
)

// Size is the number of coefficients in a Multivector.
const Size = 16

var bladeNames = [Size]string{
	"1", "e0", "e1", "e2", "e3", "e01", "e02", "e03",
	"e12", "e31", "e23", "e021", "e013", "e032", "e123", "e0123",
}

var bladeGrades = [Size]int{0, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 4}

func (b Blade) String() string {
	if b < 0 || b >= Size {
		return fmt.Sprintf("Blade(%d)", int(b))
	}
	return bladeNames[b]
}

// Grade returns the number of generators in the blade.
func (b Blade) Grade() int { return bladeGrades[b] }

// Multivector is an element of the algebra. The coefficient at index i
// multiplies the basis blade Blade(i). The zero value is the zero
// multivector.
type Multivector [Size]float64

// Basis returns the multivector v * b.
func Basis(b Blade, v float64) Multivector {
	var m Multivector
	m[b] = v
	return m
}

// FromScalar returns the grade-0 multivector s.
func FromScalar(s float64) Multivector { return Basis(Scalar, s) }

var (
	// PGA is plane based: vectors are planes.
	e0 = Basis(E0, 1)
	e1 = Basis(E1, 1)
	e2 = Basis(E2, 1)
	e3 = Basis(E3, 1)

	e123 = Basis(E123, 1)
)

// Get returns the coefficient of the blade b.
func (a Multivector) Get(b Blade) float64 { return a[b] }

// Grade returns the grade-k part of a.
func (a Multivector) Grade(k int) Multivector {
	var res Multivector
	for i := range a {
		if bladeGrades[i] == k {
			res[i] = a[i]
		}
	}
	return res
}

// IsZero returns true if every coefficient of a is exactly zero.
func (a Multivector) IsZero() bool { return a == Multivector{} }

// Add returns a + b.
func (a Multivector) Add(b Multivector) Multivector {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// Sub returns a - b.
func (a Multivector) Sub(b Multivector) Multivector {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

// Scale returns s * a.
func (a Multivector) Scale(s float64) Multivector {
	for i := range a {
		a[i] *= s
	}
	return a
}

// Neg returns -a.
func (a Multivector) Neg() Multivector { return a.Scale(-1) }

// AddScalar returns a + s. Only the grade-0 coefficient changes.
func (a Multivector) AddScalar(s float64) Multivector {
	a[Scalar] += s
	return a
}

// SubScalar returns a - s.
func (a Multivector) SubScalar(s float64) Multivector {
	a[Scalar] -= s
	return a
}

// ScalarSub returns s - a.
func ScalarSub(s float64, a Multivector) Multivector {
	return a.Neg().AddScalar(s)
}

// flipGrades negates every coefficient whose grade is flagged in neg.
func (a Multivector) flipGrades(neg [5]bool) Multivector {
	for i := range a {
		if neg[bladeGrades[i]] {
			a[i] = -a[i]
		}
	}
	return a
}

// Reverse returns ~a, reversing the order of the generators in each blade.
// Grades 2 and 3 change sign.
func (a Multivector) Reverse() Multivector {
	return a.flipGrades([5]bool{false, false, true, true, false})
}

// Dual returns !a, the Poincaré dual. Coefficient i moves to 15 - i.
func (a Multivector) Dual() Multivector {
	var res Multivector
	for i := range a {
		res[Size-1-i] = a[i]
	}
	return res
}

// Conjugate returns the Clifford conjugate of a. Grades 1 and 2 change
// sign.
func (a Multivector) Conjugate() Multivector {
	return a.flipGrades([5]bool{false, true, true, false, false})
}

// Involute returns the main involution of a. Odd grades change sign.
func (a Multivector) Involute() Multivector {
	return a.flipGrades([5]bool{false, true, false, true, false})
}

// String lists the non-zero terms of a, e.g. "1 + 0.5e12 - 2e023".
func (a Multivector) String() string {
	sb := &strings.Builder{}
	for i, x := range a {
		if x == 0 {
			continue
		}
		if sb.Len() == 0 {
			if x < 0 {
				sb.WriteString("-")
			}
		} else if x < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		if x < 0 {
			x = -x
		}
		if i == int(Scalar) {
			fmt.Fprintf(sb, "%g", x)
		} else {
			fmt.Fprintf(sb, "%g%s", x, bladeNames[i])
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

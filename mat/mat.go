/*package mat contains a small dense LU solver. It is used to solve the
normal equations of the line-line nearest point problem, which is tiny
(2x2), so everything here is written for square systems only.
*/
package mat

import (
	"errors"
	"math"
)

// ErrSingular is returned when factoring a matrix with no LU
// decomposition.
var ErrSingular = errors.New("mat: matrix is singular")

// Matrix represents a row-major matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors holds the LU decomposition of a square matrix along with its
// row permutation. Keeping it separate lets callers solve many right hand
// sides against one factorization.
type LUFactors struct {
	lu    Matrix
	pivot []int
	d     float64
}

// NewMatrix creates a matrix with the given values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// NewLUFactors allocates space for the factorization of an n x n matrix.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	return luf
}

// LU returns the LU decomposition of m.
func (m *Matrix) LU() (*LUFactors, error) {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors(m.Width)
	if err := m.LUFactorsAt(lu); err != nil {
		return nil, err
	}
	return lu, nil
}

// LUFactorsAt writes the LU decomposition of m into luf using Crout's
// method with implicit partial pivoting.
func (m *Matrix) LUFactorsAt(luf *LUFactors) error {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimenstions than m.")
	}

	n := m.Width
	scale := make([]float64, n)
	lu := luf.lu.Vals
	luf.d = 1
	copy(lu, m.Vals)

	for i := 0; i < n; i++ {
		max := 0.0
		for j := 0; j < n; j++ {
			tmp := math.Abs(lu[i*n+j])
			if tmp > max {
				max = tmp
			}
		}
		if max == 0 {
			return ErrSingular
		}
		scale[i] = 1 / max
	}

	for k := 0; k < n; k++ {
		max := 0.0
		maxi := k
		for i := k; i < n; i++ {
			tmp := scale[i] * math.Abs(lu[i*n+k])
			if tmp > max {
				max = tmp
				maxi = i
			}
		}

		if k != maxi {
			for j := 0; j < n; j++ {
				lu[k*n+j], lu[maxi*n+j] = lu[maxi*n+j], lu[k*n+j]
			}
			luf.d = -luf.d
			scale[maxi] = scale[k]
		}
		luf.pivot[k] = maxi

		if lu[k*n+k] == 0 {
			return ErrSingular
		}

		for i := k + 1; i < n; i++ {
			lu[i*n+k] /= lu[k*n+k]
			tmp := lu[i*n+k]
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= tmp * lu[k*n+j]
			}
		}
	}
	return nil
}

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	// A x = b -> (L U) x = b -> L (U x) = b -> L y = b
	copy(xs, bs)
	lu := luf.lu.Vals

	forwardSubst(n, luf.pivot, lu, xs)
	backSubst(n, lu, xs)
}

// Solves L * y = b for y in place, undoing the row permutation as it goes.
func forwardSubst(n int, pivot []int, lu, ys []float64) {
	for i := 0; i < n; i++ {
		piv := pivot[i]
		sum := ys[piv]
		ys[piv] = ys[i]
		for j := 0; j < i; j++ {
			sum -= lu[i*n+j] * ys[j]
		}
		ys[i] = sum
	}
}

// Solves U * x = y for x in place.
func backSubst(n int, lu, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := xs[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[i*n+j] * xs[j]
		}
		xs[i] = sum / lu[i*n+i]
	}
}

// Determinant returns the determinant of the factored matrix.
func (luf *LUFactors) Determinant() float64 {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}

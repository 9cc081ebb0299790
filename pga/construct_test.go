package pga

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/landy/geom"
)

func mvEpsEq(a, b Multivector, eps float64) bool {
	return floats.EqualApprox(a[:], b[:], eps)
}

func requireCoords(t *testing.T, p Multivector) geom.Point {
	t.Helper()
	c, ok := Coords(p)
	require.True(t, ok, "%v is an ideal point", p)
	return c
}

func TestPointPlane(t *testing.T) {
	p := Point(1, 2, 3)
	assert.Equal(t, 1.0, p[E123])
	assert.Equal(t, geom.Point{X: 1, Y: 2, Z: 3}, requireCoords(t, p))
	assert.Equal(t, 3, Blade(E032).Grade())

	pl := Plane(2, 0, 1, -3)
	assert.Equal(t, pl, pl.Grade(1))
	assert.Equal(t, -3.0, pl[E0])
	assert.Equal(t, 2.0, pl[E1])

	// The point lies on the plane 2x + z - 3 = 0 iff their join vanishes.
	on := Point(1, 7, 1)
	assert.Equal(t, 0.0, pl.Vee(on)[Scalar])
	assert.NotEqual(t, 0.0, pl.Vee(p)[Scalar])

	_, ok := Coords(Ideal(1, 0, 0))
	assert.False(t, ok)
}

func TestNorm(t *testing.T) {
	table := []struct {
		m            Multivector
		norm, inorm float64
	}{
		{Point(1, 2, 3), 1, math.Sqrt(14)},
		{Point(0, 0, 0), 1, 0},
		{Plane(2, 0, 1, -3), math.Sqrt(5), 3},
		{Basis(E12, 1), 1, 0},
		{Basis(E01, 1), 0, 1},
		{Ideal(3, 4, 0), 0, 5},
		{FromScalar(-2), 2, 0},
	}

	for i, test := range table {
		assert.InDelta(t, test.norm, test.m.Norm(), 1e-12, "%d) Norm(%v)", i+1, test.m)
		assert.InDelta(t, test.inorm, test.m.INorm(), 1e-12, "%d) INorm(%v)", i+1, test.m)
	}
}

func TestNormalized(t *testing.T) {
	gen := rand.New(rand.NewSource(19))
	for i := 0; i < 100; i++ {
		a := randomMultivector(gen)
		n1, err := a.Normalized()
		require.NoError(t, err, "%d)", i+1)
		n2, err := n1.Normalized()
		require.NoError(t, err, "%d)", i+1)
		assert.InDelta(t, 1, n1.Norm(), 1e-9, "%d)", i+1)
		assert.True(t, mvEpsEq(n1, n2, 1e-9), "%d) %v != %v", i+1, n1, n2)
	}

	for i, m := range []Multivector{{}, Basis(E01, 2), Ideal(1, 2, 3), Basis(E0123, 1)} {
		_, err := m.Normalized()
		assert.ErrorIs(t, err, ErrZeroNorm, "%d) Normalized(%v)", i+1, m)
	}
}

func TestRotor(t *testing.T) {
	r, err := Rotor(math.Pi/2, e1.Mul(e2))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, r[Scalar], 1e-15)
	assert.InDelta(t, math.Sqrt2/2, r[E12], 1e-15)
	assert.InDelta(t, 1, r.Norm(), 1e-15)

	c := requireCoords(t, Sandwich(r, Point(1, 0, 0)))
	assert.True(t, geom.IsNear(c, geom.Point{X: 0, Y: -1, Z: 0}), "%v", c)

	// The line's weight does not matter.
	r2, err := Rotor(math.Pi/2, e1.Mul(e2).Scale(7))
	require.NoError(t, err)
	assert.True(t, mvEpsEq(r, r2, 1e-15))

	_, err = Rotor(1, Basis(E01, 1))
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func TestRotorAxis(t *testing.T) {
	table := []struct {
		angle   float64
		axis    geom.Point
		in, out geom.Point
	}{
		{math.Pi / 2, geom.Point{X: 0, Y: 0, Z: 1}, geom.Point{X: 1, Y: 0, Z: 0}, geom.Point{X: 0, Y: 1, Z: 0}},
		{math.Pi / 2, geom.Point{X: 1, Y: 0, Z: 0}, geom.Point{X: 0, Y: 1, Z: 0}, geom.Point{X: 0, Y: 0, Z: 1}},
		{math.Pi / 2, geom.Point{X: 0, Y: 5, Z: 0}, geom.Point{X: 0, Y: 0, Z: 1}, geom.Point{X: 1, Y: 0, Z: 0}},
		{math.Pi, geom.Point{X: 1, Y: 1, Z: 0}, geom.Point{X: 1, Y: 0, Z: 0}, geom.Point{X: 0, Y: 1, Z: 0}},
		{0, geom.Point{X: 1, Y: 2, Z: 3}, geom.Point{X: 4, Y: 5, Z: 6}, geom.Point{X: 4, Y: 5, Z: 6}},
	}

	for i, test := range table {
		r, err := RotorAxis(test.angle, test.axis.X, test.axis.Y, test.axis.Z)
		require.NoError(t, err, "%d)", i+1)
		c := requireCoords(t, Sandwich(r, FromPoint(test.in)))
		if !geom.IsNear(c, test.out) {
			t.Errorf("%d) rotating %v by %.4g around %v gave %v instead of %v",
				i+1, test.in, test.angle, test.axis, c, test.out)
		}
	}

	_, err := RotorAxis(1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func TestTranslator(t *testing.T) {
	tr := Translator(2, e1.Mul(e0))
	c := requireCoords(t, Sandwich(tr, Point(0, 0, 0)))
	assert.True(t, geom.IsNear(c, geom.Point{X: 2, Y: 0, Z: 0}), "%v", c)

	table := []struct {
		dist       float64
		dir        geom.Point
		start, end geom.Point
	}{
		{3, geom.Point{X: 1, Y: 2, Z: 2}, geom.Point{}, geom.Point{X: 1, Y: 2, Z: 2}},
		{1, geom.Point{X: 0, Y: 0, Z: -4}, geom.Point{X: 1, Y: 1, Z: 1}, geom.Point{X: 1, Y: 1, Z: 0}},
		{-2, geom.Point{X: 0, Y: 1, Z: 0}, geom.Point{X: 5, Y: 0, Z: 0}, geom.Point{X: 5, Y: -2, Z: 0}},
	}

	for i, test := range table {
		tr, err := TranslatorAlong(test.dist, test.dir.X, test.dir.Y, test.dir.Z)
		require.NoError(t, err, "%d)", i+1)
		c := requireCoords(t, Sandwich(tr, FromPoint(test.start)))
		if !geom.IsNear(c, test.end) {
			t.Errorf("%d) translating %v by %g along %v gave %v instead of %v",
				i+1, test.start, test.dist, test.dir, c, test.end)
		}
	}

	_, err := TranslatorAlong(1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func TestMotor(t *testing.T) {
	// A quarter turn around z composed with a unit step along (0, 1, 1):
	// the translation is applied first.
	r, err := RotorAxis(math.Pi/2, 0, 0, 1)
	require.NoError(t, err)
	tr, err := TranslatorAlong(1, 0, 1, 1)
	require.NoError(t, err)
	m := r.Mul(tr)

	c := requireCoords(t, Sandwich(m, Point(1, 0, 0)))
	want := geom.Point{X: -math.Sqrt2 / 2, Y: 1, Z: math.Sqrt2 / 2}
	assert.True(t, geom.IsNear(c, want), "%v", c)

	// Motors act on lines and planes too, and preserve incidence.
	p := Point(1, 0, 0)
	pl := Plane(1, 0, 0, -1)
	require.Equal(t, 0.0, pl.Vee(p)[Scalar])
	p2, pl2 := Sandwich(m, p), Sandwich(m, pl)
	assert.InDelta(t, 0, pl2.Vee(p2)[Scalar], 1e-12)
}

func TestGeometryDemo(t *testing.T) {
	rot, err := Rotor(math.Pi/2, e1.Mul(e2))
	require.NoError(t, err)

	// The yz and xz planes meet in the z axis, which meets the xy plane in
	// the origin.
	axZ := e1.Wedge(e2)
	assert.Equal(t, Basis(E12, 1), axZ)
	orig := axZ.Wedge(e3)
	assert.Equal(t, Basis(E123, 1), orig)

	px := Point(1, 0, 0)
	line := orig.Vee(px)
	assert.Equal(t, Basis(E23, -1), line)

	p := Plane(2, 0, 1, -3)
	assert.True(t, mvEpsEq(Sandwich(rot, p), Plane(0, -2, 1, -3), 1e-12))
	assert.True(t, mvEpsEq(Sandwich(rot, line), Basis(E31, 1), 1e-12))

	proj := ProjectOntoPlane(px, p)
	assert.InDelta(t, 5, proj[E123], 1e-12)
	c := requireCoords(t, proj)
	assert.True(t, geom.IsNear(c, geom.Point{X: 1.4, Y: 0, Z: 0.2}), "%v", c)
}

func TestPointOnTorus(t *testing.T) {
	table := []struct {
		s, t float64
		want geom.Point
	}{
		{0, 0, geom.Point{X: 0.85, Y: 0, Z: 0}},
		{0.25, 0, geom.Point{X: 0, Y: 0, Z: -0.85}},
		{0, 0.25, geom.Point{X: 0.6, Y: -0.25, Z: 0}},
		{0.5, 0.5, geom.Point{X: -0.35, Y: 0, Z: 0}},
		{0.1, 0.3, geom.Point{X: 0.4229101966249684, Y: -0.2377641290737884, Z: -0.30726224337514874}},
		{1, 1, geom.Point{X: 0.85, Y: 0, Z: 0}},
	}

	for i, test := range table {
		p, err := PointOnTorus(test.s, test.t)
		require.NoError(t, err, "%d)", i+1)
		assert.InDelta(t, 1, p[E123], 1e-12, "%d) weight", i+1)
		c := requireCoords(t, p)
		if !geom.IsNear(c, test.want) {
			t.Errorf("%d) PointOnTorus(%g, %g) = %v, expected %v",
				i+1, test.s, test.t, c, test.want)
		}
	}
}

func TestTorusSurface(t *testing.T) {
	// Every sample lies on the torus with major radius 0.6 around the y
	// axis and minor radius 0.25.
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			p, err := PointOnTorus(float64(i)/20, float64(j)/20)
			require.NoError(t, err)
			c := requireCoords(t, p)
			rho := math.Hypot(c.X, c.Z)
			d := math.Hypot(rho-torusMajorRadius, c.Y)
			assert.InDelta(t, torusMinorRadius, d, 1e-12, "(%d, %d) %v", i, j, c)
		}
	}

	_, err := Torus(0, 0, 1, Basis(E01, 1), 1, e1.Mul(e2))
	assert.ErrorIs(t, err, ErrZeroNorm)
	_, err = Circle(0, 1, Multivector{})
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func BenchmarkPointOnTorus(b *testing.B) {
	for i := 0; i < b.N; i++ {
		PointOnTorus(float64(i%100)/100, float64(i%37)/37)
	}
}

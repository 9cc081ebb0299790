/*package geom contains classical vector routines for points and lines in
3D space: cross and dot products, parallel and skew tests and the nearest
points between two lines.

Everything here is plain Euclidean vector algebra. Package pga solves the
same problems with projective geometric algebra, and the two are tested
against each other.
*/
package geom

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Eps is the tolerance used by IsNear, IsParallel and IsSkew.
var Eps = 1e-6

// Point is a position or a direction in 3D space.
type Point r3.Vector

func (p Point) vec() r3.Vector { return r3.Vector(p) }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point(p.vec().Add(q.vec())) }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point(p.vec().Sub(q.vec())) }

// Scale returns s * p.
func (p Point) Scale(s float64) Point { return Point(p.vec().Mul(s)) }

func (p Point) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", p.X, p.Y, p.Z)
}

// Cross returns p x q.
func Cross(p, q Point) Point { return Point(p.vec().Cross(q.vec())) }

// Dot returns p . q.
func Dot(p, q Point) float64 { return p.vec().Dot(q.vec()) }

// Norm returns |p|.
func Norm(p Point) float64 { return p.vec().Norm() }

// IsNear returns true if p and q are closer than Eps.
func IsNear(p, q Point) bool { return IsNearEps(p, q, Eps) }

// IsNearEps returns true if p and q are closer than eps.
func IsNearEps(p, q Point, eps float64) bool { return Norm(p.Sub(q)) < eps }

func epsEq(x, y, eps float64) bool {
	return (x+eps > y) && (x-eps < y)
}

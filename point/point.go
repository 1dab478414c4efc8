// Package point defines the foundational geometric primitive used throughout this module: a
// two-dimensional point with floating-point coordinates, doubling as a free vector for the
// arithmetic the sweepline engine needs (addition, subtraction, dot product, perp-dot/cross
// product, and the perpendicular rotation used to locate a circumcenter).
package point

import (
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/arnebn/delaunay2d/numeric"
	"github.com/arnebn/delaunay2d/options"
	"github.com/arnebn/delaunay2d/types"
)

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
// It doubles as a vector: Add, Sub, DotProduct, CrossProduct, and Perp all treat a Point as
// the vector from the origin to that Point.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// NewFromImagePoint creates a Point from an [image.Point], useful when bridging to pixel-space
// renderers.
func NewFromImagePoint(q image.Point) Point {
	return Point{x: float64(q.X), y: float64(q.Y)}
}

// Add returns the component-wise sum of two points treated as vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p, i.e. p - q.
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Negate returns a new Point with both coordinates negated.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// Scale returns p scaled by k as a free vector (no reference point): (k*x, k*y).
func (p Point) Scale(k float64) Point {
	return New(p.x*k, p.y*k)
}

// CrossProduct returns the 2D cross product (perp-dot product, a.k.a. determinant) of two
// vectors:
//
//	a × b = a.x*b.y - a.y*b.x
//
// A positive result indicates b lies counterclockwise from a; negative, clockwise; zero,
// collinear. This is the turn test used to reject circle-event constructions whose three foci
// do not curve the right way.
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DotProduct returns the dot product of p and q treated as vectors.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// Perp returns p rotated a quarter turn counterclockwise: (x,y) -> (-y,x). Used to go from the
// chord d = p2-p0 of a circumcircle construction to the direction of its perpendicular bisector.
func (p Point) Perp() Point {
	return New(-p.y, p.x)
}

// SquaredLength returns |p|^2, the dot product of p with itself.
func (p Point) SquaredLength() float64 {
	return p.x*p.x + p.y*p.y
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p and q, avoiding the
// cost of a square root when only relative distance matters.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	return q.Sub(p).SquaredLength()
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq determines whether p is equal to q, either exactly (default) or within an epsilon
// tolerance.
//
// Parameters:
//   - q (Point): The point to compare against.
//   - opts: A variadic slice of [options.GeometryOptionsFunc] functions to customize the
//     equality check. [options.WithEpsilon](epsilon float64): specifies a tolerance for
//     comparing coordinates to handle floating-point precision errors.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	opt := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return numeric.FloatEquals(p.x, q.x, opt.Epsilon) && numeric.FloatEquals(p.y, q.y, opt.Epsilon)
}

// RelationshipToPoint reports whether p and q are the same point (within epsilon) or disjoint.
func (p Point) RelationshipToPoint(q Point, opts ...options.GeometryOptionsFunc) types.Relationship {
	if p.Eq(q, opts...) {
		return types.RelationshipEqual
	}
	return types.RelationshipDisjoint
}

// X returns the x-coordinate of p.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of p.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the x and y coordinates of p as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// String returns a string representation of p in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

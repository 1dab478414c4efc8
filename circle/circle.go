// Package circle provides a representation of circles in a two-dimensional space, along with
// the circumcircle construction and in-circle test the Delaunay condition is built on.
//
// # Overview
//
// The [Circle] type represents a circle defined by a center point and a radius. [CircumCircle]
// builds the unique circle through three non-collinear points; [Circle.RelationshipToPoint]
// answers the in-circle test used to decide whether a fourth point violates the Delaunay
// empty-circumcircle property.
package circle

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/arnebn/delaunay2d/numeric"
	"github.com/arnebn/delaunay2d/options"
	"github.com/arnebn/delaunay2d/point"
	"github.com/arnebn/delaunay2d/types"
)

// Circle represents a circle in 2D space with a center point and a radius.
type Circle struct {
	center point.Point
	radius float64
}

// New creates a new [Circle] with the specified center coordinates and radius.
func New(x, y, radius float64) Circle {
	return Circle{
		center: point.New(x, y),
		radius: math.Abs(radius),
	}
}

// NewFromPoint creates a new [Circle] with the specified center [point.Point] and radius.
func NewFromPoint(center point.Point, radius float64) Circle {
	return Circle{
		center: center,
		radius: math.Abs(radius),
	}
}

// CircumCircle returns the unique circle passing through p0, p1, and p2, given in the order a
// triangle's vertices are wound. ok is false if the three points are collinear (or wound
// clockwise under this package's convention), in which case no circumcircle exists.
//
// This follows original_source/delaunay.cpp's QueueEvent::triangle construction: r0 is the
// midpoint of the p0-p2 chord, r is the vector from r0 to p1, d is the p0-p2 chord itself, and
// s = r × d is a perp-dot rejection test — s <= 0 means p1 does not lie to the correct side of
// the chord for a counterclockwise-wound triple, so the construction is rejected rather than
// producing a circle on the wrong side. h solves for how far along the perpendicular bisector
// of d the circumcenter sits; the circumradius follows from the Pythagorean relation between h,
// the half-chord length, and the radius.
func CircumCircle(p0, p1, p2 point.Point) (c Circle, ok bool) {
	r0 := p0.Add(p2).Scale(0.5)
	r := p1.Sub(r0)
	d := p2.Sub(p0)
	s := r.CrossProduct(d)
	if s <= 0 {
		return Circle{}, false
	}
	dd4 := d.SquaredLength() / 4
	h := (r.SquaredLength() - dd4) / s
	center := r0.Sub(d.Perp().Scale(h / 2))
	radius := math.Sqrt(dd4 * (1 + h*h))
	return Circle{center: center, radius: radius}, true
}

// Area calculates the area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Center returns the center [point.Point] of the Circle.
func (c Circle) Center() point.Point {
	return c.center
}

// Circumference calculates the circumference of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// RelationshipToPoint determines whether p lies outside, on the boundary of, or inside c.
//
// This is the Delaunay in-circle test: a triangulation is Delaunay exactly when no input point
// lies in [types.RelationshipContainedBy] relative to any triangle's circumcircle.
func (c Circle) RelationshipToPoint(p point.Point, opts ...options.GeometryOptionsFunc) types.Relationship {
	opt := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	d := p.DistanceToPoint(c.center)
	switch {
	case numeric.FloatEquals(d, c.radius, opt.Epsilon):
		return types.RelationshipIntersection
	case d < c.radius:
		return types.RelationshipContainedBy
	default:
		return types.RelationshipDisjoint
	}
}

// Eq determines whether c is equal to other, either exactly (default) or within an epsilon
// tolerance supplied via [options.WithEpsilon].
func (c Circle) Eq(other Circle, opts ...options.GeometryOptionsFunc) bool {
	opt := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return c.center.Eq(other.center, opts...) && numeric.FloatEquals(c.radius, other.radius, opt.Epsilon)
}

// MarshalJSON serializes Circle as JSON.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Center point.Point `json:"center"`
		Radius float64     `json:"radius"`
	}{
		Center: c.center,
		Radius: c.radius,
	})
}

// Radius returns the radius of the Circle.
func (c Circle) Radius() float64 {
	return c.radius
}

// String returns a string representation of the Circle in the format "(x,y; r=radius)".
func (c Circle) String() string {
	return fmt.Sprintf("(%f,%f; r=%f)", c.center.X(), c.center.Y(), c.radius)
}

// Translate moves the circle by a specified vector (given as a [point.Point]).
func (c Circle) Translate(v point.Point) Circle {
	return Circle{center: c.center.Add(v), radius: c.radius}
}

// UnmarshalJSON deserializes JSON into a Circle.
func (c *Circle) UnmarshalJSON(data []byte) error {
	var temp struct {
		Center point.Point `json:"center"`
		Radius float64     `json:"radius"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Radius < 0 {
		return fmt.Errorf("invalid radius: must be non-negative, got %v", temp.Radius)
	}
	c.center = temp.Center
	c.radius = temp.Radius
	return nil
}

package delaunay

import "github.com/arnebn/delaunay2d/point"

// TriRef is a handle to one edge of a neighboring triangle: Tri is the neighbor, Edge is the
// index of the neighbor's edge that borders the triangle holding this TriRef. The zero value
// (Tri == nil) means "no neighbor on this edge yet" — true only transiently, while a triangle is
// still being built by the sweep.
type TriRef struct {
	Tri  *Triangle
	Edge int
}

// IsNil reports whether this reference has no triangle attached.
func (r TriRef) IsNil() bool {
	return r.Tri == nil
}

// Triangle is one slot of the output mesh. Verts holds the three vertex references in winding
// order; a nil entry is the sentinel "point at infinity", marking a ghost triangle along the
// convex hull. Neighbors[i] is the triangle (and its opposite edge) sharing the edge between
// Verts[(i+1)%3] and Verts[(i+2)%3].
type Triangle struct {
	Verts     [3]*point.Point
	Neighbors [3]TriRef
}

// connect wires edge e1 of t1 to edge e2 of t2, and the reverse, maintaining the neighbor
// symmetry invariant.
func connect(t1 *Triangle, e1 int, t2 *Triangle, e2 int) {
	t1.Neighbors[e1] = TriRef{Tri: t2, Edge: e2}
	t2.Neighbors[e2] = TriRef{Tri: t1, Edge: e1}
}

// connectRef wires edge e1 of t1 to whatever triangle ref currently occupies the other side,
// used when re-stitching around a collapsed arc where the neighbor is read from an existing
// triangle rather than passed directly.
func connectRef(t1 *Triangle, e1 int, ref TriRef) {
	t1.Neighbors[e1] = ref
	if ref.Tri != nil {
		ref.Tri.Neighbors[ref.Edge] = TriRef{Tri: t1, Edge: e1}
	}
}

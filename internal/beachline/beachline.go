// Package beachline implements the ordered container used as Fortune's-algorithm status
// structure: it keeps the breakpoints between adjacent parabolic arcs sorted left to right by
// where each breakpoint currently projects onto the sweep line.
//
// The design mirrors the project's line-segment sweep status structure (a single
// github.com/emirpasic/gods/trees/redblacktree whose comparator closes over a live "current
// sweep position" and whose entries lazily recompute their sweep-line projection only when that
// position has moved): here the projection is a parabola-intersection x instead of a segment-at-y
// x, but the "ambient sweep state" comparator shape is the same. Fortune's invariant that
// breakpoints never swap relative order between events is what makes a single live comparator
// valid across repeated Insert/Remove/Find calls.
package beachline

import (
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/arnebn/delaunay2d/point"
)

// Arc is an entry in the beachline: the breakpoint between the parabolic arc focused at Left and
// the parabolic arc focused at Right, with Left immediately to the left of Right along the
// beachline. Payload carries the caller's per-breakpoint bookkeeping (the sweep engine stores the
// triangle being built at this breakpoint and any pending circle event here); the beachline
// itself never inspects it.
type Arc struct {
	Left, Right *point.Point
	Payload     any

	query      bool
	queryPoint point.Point

	haveX     bool
	cachedAtY float64
	cachedX   float64
}

func (a *Arc) x(sweepY float64) float64 {
	if a.haveX && a.cachedAtY == sweepY {
		return a.cachedX
	}
	a.cachedX = breakpointX(*a.Left, *a.Right, sweepY)
	a.cachedAtY = sweepY
	a.haveX = true
	return a.cachedX
}

// Beachline is the ordered set of Arc breakpoints, sorted left to right as of the most recent
// call to SetSweepY.
type Beachline struct {
	tree   *rbt.Tree
	sweepY float64
}

// New returns an empty Beachline.
func New() *Beachline {
	b := &Beachline{}
	b.tree = rbt.NewWith(b.compare)
	return b
}

// SetSweepY moves the live sweep position used by every subsequent comparison. Call this before
// any Insert/Remove/Find at a new event's y.
func (b *Beachline) SetSweepY(y float64) {
	b.sweepY = y
}

func (b *Beachline) compare(x, y interface{}) int {
	a := x.(*Arc)
	c := y.(*Arc)
	switch {
	case a.query && c.query:
		return 0
	case a.query:
		return -cmpBreakpointToPoint(*c.Left, *c.Right, a.queryPoint)
	case c.query:
		return -cmpBreakpointToPoint(*a.Left, *a.Right, c.queryPoint)
	}
	ax, cx := a.x(b.sweepY), c.x(b.sweepY)
	switch {
	case ax < cx:
		return -1
	case ax > cx:
		return 1
	default:
		return 0
	}
}

// Insert adds an arc to the beachline. sweepY should already reflect the event driving this
// insertion (via SetSweepY).
func (b *Beachline) Insert(a *Arc) {
	b.tree.Put(a, nil)
}

// Remove deletes an arc from the beachline.
func (b *Beachline) Remove(a *Arc) {
	b.tree.Remove(a)
}

// Find returns the breakpoints immediately left (before) and right (after) of p at the current
// sweep position, i.e. the two breakpoints bounding the arc p currently falls under. Either may
// be nil if p falls beyond the leftmost/rightmost breakpoint.
func (b *Beachline) Find(p point.Point) (before, after *Arc) {
	q := &Arc{query: true, queryPoint: p}
	if node, ok := b.tree.Floor(q); ok {
		before = node.Key.(*Arc)
	}
	if node, ok := b.tree.Ceiling(q); ok {
		after = node.Key.(*Arc)
	}
	return before, after
}

// Prev returns the breakpoint immediately to the left of a, if any.
func (b *Beachline) Prev(a *Arc) (*Arc, bool) {
	node := b.tree.GetNode(a)
	if node == nil {
		return nil, false
	}
	it := b.tree.IteratorAt(node)
	if !it.Prev() {
		return nil, false
	}
	return it.Key().(*Arc), true
}

// Next returns the breakpoint immediately to the right of a, if any.
func (b *Beachline) Next(a *Arc) (*Arc, bool) {
	node := b.tree.GetNode(a)
	if node == nil {
		return nil, false
	}
	it := b.tree.IteratorAt(node)
	if !it.Next() {
		return nil, false
	}
	return it.Key().(*Arc), true
}

// First returns the leftmost breakpoint, if any.
func (b *Beachline) First() (*Arc, bool) {
	node := b.tree.Left()
	if node == nil {
		return nil, false
	}
	return node.Key.(*Arc), true
}

// Last returns the rightmost breakpoint, if any.
func (b *Beachline) Last() (*Arc, bool) {
	node := b.tree.Right()
	if node == nil {
		return nil, false
	}
	return node.Key.(*Arc), true
}

// Len reports the number of breakpoints currently on the beachline.
func (b *Beachline) Len() int {
	return b.tree.Size()
}

// Empty reports whether the beachline holds no breakpoints.
func (b *Beachline) Empty() bool {
	return b.tree.Empty()
}

// cmpBreakpointToPoint reports where v falls relative to the breakpoint between the parabolic
// arcs focused at left and right: -1 if the breakpoint is left of v, 1 if it is at or right of v.
// Ported from the reference implementation's BeachPoint::cmp, which this module's breakpoint
// representation and site/circle-event bookkeeping both follow closely.
func cmpBreakpointToPoint(left, right, v point.Point) int {
	dx := right.X() - left.X()
	dy := right.Y() - left.Y()
	if dy == 0 {
		if dx <= 0 {
			return 1
		}
		if v.Y() <= left.Y() {
			if v.X() > right.X() {
				return -1
			}
			return 1
		}
	}
	y1 := v.Y() - left.Y()
	y2 := v.Y() - right.Y()
	w := 4 * y1 * y2
	dd := dx*dx + dy*dy
	if dx > 0 {
		t := (dx*dx - w) / (dx*(y1+y2) + math.Sqrt(w*dd))
		if 2*v.X() > right.X()+left.X()+t*dy {
			return -1
		}
		return 1
	}
	t := dx*(y1+y2) - math.Sqrt(w*dd)
	if 2*v.X() > right.X()+left.X()+t/dy {
		return -1
	}
	return 1
}

// breakpointX locates the x coordinate where the breakpoint between left's and right's parabolic
// arcs currently sits, for a sweep line at y=sweepY. Only the relative order of breakpoints
// matters to the beachline (output geometry comes entirely from circle.CircumCircle), so this
// solves for x by bisecting against cmpBreakpointToPoint rather than picking a root of the
// quadratic intersection by hand: the former reuses an already-faithful port of the proven
// reference comparator, the latter would need an error-prone root-selection rule that can't be
// verified without running the sweep.
func breakpointX(left, right point.Point, sweepY float64) float64 {
	side := func(x float64) int {
		return cmpBreakpointToPoint(left, right, point.New(x, sweepY))
	}

	lo := math.Min(left.X(), right.X()) - 1
	hi := math.Max(left.X(), right.X()) + 1
	sLo, sHi := side(lo), side(hi)
	for i := 0; i < 200 && sLo == sHi; i++ {
		span := hi - lo
		lo -= span
		hi += span
		sLo, sHi = side(lo), side(hi)
	}

	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if side(mid) == sLo {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

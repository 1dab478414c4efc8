// Package delaunay computes the Delaunay triangulation of a finite planar point set using
// Fortune's sweepline algorithm: a coupled event queue and beachline sweep from top to bottom,
// spawning triangles on site and circle events and stitching them into a caller-owned mesh.
package delaunay

import (
	"github.com/arnebn/delaunay2d/circle"
	"github.com/arnebn/delaunay2d/internal/beachline"
	"github.com/arnebn/delaunay2d/internal/sweepqueue"
	"github.com/arnebn/delaunay2d/options"
	"github.com/arnebn/delaunay2d/point"
)

// Triangulate computes the Delaunay triangulation of points, writing ghost and real triangles
// into tris (which must have capacity at least max(0, 2*len(points)-2)) and returning the number
// of slots written. Triangle vertex references point into the points slice, which must not be
// moved or reallocated for as long as the returned triangles are used.
//
// N < 2 returns (0, nil): there is nothing to triangulate. A buffer too small to hold the output
// returns ErrTriangleBufferTooSmall. Coincident input points (equal under the configured epsilon)
// return ErrCoincidentPoints; the algorithm assumes distinct points in general position.
func Triangulate(tris []Triangle, points []point.Point, opts ...options.GeometryOptionsFunc) (int, error) {
	n := len(points)
	if n < 2 {
		return 0, nil
	}

	need := 2*n - 2
	if len(tris) < need {
		return 0, ErrTriangleBufferTooSmall
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i].Eq(points[j], opts...) {
				return 0, ErrCoincidentPoints
			}
		}
	}

	events := sweepqueue.New[*sweepEvent]()
	for i := range points {
		events.Push(&sweepEvent{at: points[i], kind: eventSite, site: &points[i]})
	}

	line := beachline.New()
	triIdx := 0
	nextTri := func() *Triangle {
		t := &tris[triIdx]
		triIdx++
		return t
	}

	newCircleEvent := func(arc *beachline.Arc, third *point.Point) *sweepEvent {
		if arc.Left == third {
			return nil
		}
		c, ok := circle.CircumCircle(*arc.Left, *arc.Right, *third)
		if !ok {
			return nil
		}
		return &sweepEvent{
			at:   point.New(c.Center().X(), c.Center().Y()+c.Radius()),
			kind: eventCircle,
			arc:  arc,
		}
	}

	removeEvent := func(e *sweepEvent) {
		if e != nil {
			events.Remove(e)
		}
	}

	// Bootstrap: the two topmost sites seed two ghost triangles and the beachline's first two
	// arcs. Inserting into an empty beachline needs no special-casing beyond the ordinary
	// insertion path below — find_place against an empty tree trivially has no predecessor or
	// successor regardless of the query point.
	ev1, _ := events.Pop()
	ev2, _ := events.Pop()
	q1, q2 := ev1.site, ev2.site

	t0 := nextTri()
	t1 := nextTri()
	t0.Verts = [3]*point.Point{nil, q1, q2}
	t1.Verts = [3]*point.Point{nil, q2, q1}
	connect(t0, 0, t1, 0)
	connect(t0, 1, t1, 2)
	connect(t0, 2, t1, 1)

	line.SetSweepY(q2.Y())
	a1 := &beachline.Arc{Left: q1, Right: q2, Payload: &arcState{tri: t0}}
	line.Insert(a1)
	a2 := &beachline.Arc{Left: q2, Right: q1, Payload: &arcState{tri: t1}}
	line.Insert(a2)

	for !events.Empty() {
		ev, _ := events.Pop()
		line.SetSweepY(ev.at.Y())

		switch ev.kind {
		case eventSite:
			logDebugf("site event at %s", ev.site)

			before, after := line.Find(*ev.site)
			if before == nil {
				before, _ = line.Last()
			}
			if after == nil {
				after, _ = line.First()
			}
			prev, next := before, after

			prevState := prev.Payload.(*arcState)
			nextState := next.Payload.(*arcState)

			ta := nextTri()
			tb := nextTri()
			ta.Verts = [3]*point.Point{nil, prev.Right, ev.site}
			tb.Verts = [3]*point.Point{nil, ev.site, prev.Right}
			connect(ta, 0, tb, 0)
			connect(ta, 1, tb, 2)
			connect(ta, 2, prevState.tri, 1)
			connect(nextState.tri, 2, tb, 1)

			b1 := &beachline.Arc{Left: prev.Right, Right: ev.site, Payload: &arcState{tri: ta}}
			line.Insert(b1)
			b2 := &beachline.Arc{Left: ev.site, Right: prev.Right, Payload: &arcState{tri: tb}}
			line.Insert(b2)

			removeEvent(prevState.event)
			prevState.event = newCircleEvent(prev, ev.site)
			if prevState.event != nil {
				events.Push(prevState.event)
			}

			b2State := b2.Payload.(*arcState)
			b2State.event = newCircleEvent(b2, next.Right)
			if b2State.event != nil {
				events.Push(b2State.event)
			}

		case eventCircle:
			prev := ev.arc
			next, ok := line.Next(prev)
			if !ok {
				continue
			}
			logDebugf("circle event collapsing arc focused at %s", prev.Right)

			prevState := prev.Payload.(*arcState)
			nextState := next.Payload.(*arcState)

			prevState.tri.Verts[0] = next.Right
			nextState.tri.Verts[1] = prev.Left

			connectRef(prevState.tri, 1, nextState.tri.Neighbors[0])
			connectRef(nextState.tri, 2, prevState.tri.Neighbors[2])
			connect(prevState.tri, 2, nextState.tri, 0)

			next.Left = prev.Left
			line.Remove(prev)

			if left, ok := line.Prev(next); ok {
				leftState := left.Payload.(*arcState)
				removeEvent(leftState.event)
				leftState.event = newCircleEvent(left, next.Right)
				if leftState.event != nil {
					events.Push(leftState.event)
				}
			}
			if right, ok := line.Next(next); ok {
				removeEvent(nextState.event)
				nextState.event = newCircleEvent(next, right.Right)
				if nextState.event != nil {
					events.Push(nextState.event)
				}
			}
		}
	}

	return triIdx, nil
}

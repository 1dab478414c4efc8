package delaunay

import (
	"github.com/arnebn/delaunay2d/internal/beachline"
	"github.com/arnebn/delaunay2d/point"
)

type eventKind uint8

const (
	eventSite eventKind = iota
	eventCircle
)

// sweepEvent is a site or circle event on the sweep queue. For a site event, site is the input
// point being reached. For a circle event, arc is the beachline breakpoint whose right arc is
// predicted to vanish, and at is the circumcenter's y plus circumradius (the y at which that
// happens), with at.X() set to the circumcenter's x purely so equal-y events still tie-break
// deterministically by x.
type sweepEvent struct {
	at   point.Point
	kind eventKind
	site *point.Point
	arc  *beachline.Arc
}

// At implements sweepqueue.Item.
func (e *sweepEvent) At() point.Point {
	return e.at
}

// arcState is the per-breakpoint bookkeeping the sweep engine attaches to every beachline.Arc via
// its Payload field: the triangle currently being built at this breakpoint, and the handle of its
// pending circle event, if any.
type arcState struct {
	tri   *Triangle
	event *sweepEvent
}

// Package sweepqueue implements the sweep event priority queue for the Delaunay sweep engine,
// backed by github.com/google/btree the way the project's alternate line-segment event queue
// (sweepline_eventqueue.go's btree.BTreeG[qItem]) is, adapted from that queue's descending-y
// ordering to ascending-(y,x): this sweep consumes site and circle events from top to bottom
// instead of the line-segment sweep's bottom-to-top traversal.
package sweepqueue

import (
	"github.com/google/btree"

	"github.com/arnebn/delaunay2d/point"
)

// Item is anything the queue can order: At returns the (x,y) used for priority, lowest y first
// and, among ties, lowest x first.
type Item interface {
	At() point.Point
}

type entry[T Item] struct {
	item T
}

func less[T Item](a, b entry[T]) bool {
	pa, pb := a.item.At(), b.item.At()
	if pa.Y() != pb.Y() {
		return pa.Y() < pb.Y()
	}
	return pa.X() < pb.X()
}

// Queue is a priority queue of Item ordered ascending by (y, x).
type Queue[T Item] struct {
	tree *btree.BTreeG[entry[T]]
}

// New returns an empty Queue.
func New[T Item]() *Queue[T] {
	return &Queue[T]{tree: btree.NewG[entry[T]](32, less[T])}
}

// Push adds an event to the queue.
func (q *Queue[T]) Push(item T) {
	q.tree.ReplaceOrInsert(entry[T]{item: item})
}

// Pop removes and returns the event with the smallest (y, x), or ok=false if the queue is empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	e, ok := q.tree.DeleteMin()
	return e.item, ok
}

// Remove deletes a previously pushed event, e.g. to invalidate a circle event that an arc removal
// has made stale. A no-op if item isn't present.
func (q *Queue[T]) Remove(item T) {
	q.tree.Delete(entry[T]{item: item})
}

// Empty reports whether the queue holds no events.
func (q *Queue[T]) Empty() bool {
	return q.tree.Len() == 0
}

// Len reports the number of events currently queued.
func (q *Queue[T]) Len() int {
	return q.tree.Len()
}

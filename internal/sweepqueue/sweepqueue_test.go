package sweepqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnebn/delaunay2d/internal/sweepqueue"
	"github.com/arnebn/delaunay2d/point"
)

type testItem struct {
	at   point.Point
	name string
}

func (i *testItem) At() point.Point { return i.at }

func TestQueue_PopsAscendingYThenX(t *testing.T) {
	q := sweepqueue.New[*testItem]()
	a := &testItem{at: point.New(5, 2), name: "a"}
	b := &testItem{at: point.New(1, 1), name: "b"}
	c := &testItem{at: point.New(3, 1), name: "c"}
	q.Push(a)
	q.Push(b)
	q.Push(c)

	require.Equal(t, 3, q.Len())

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", first.name) // y=1, smallest x among y=1 entries

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "c", second.name) // y=1, x=3

	third, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", third.name) // y=2

	assert.True(t, q.Empty())
}

func TestQueue_Remove(t *testing.T) {
	q := sweepqueue.New[*testItem]()
	a := &testItem{at: point.New(0, 0), name: "a"}
	b := &testItem{at: point.New(0, 1), name: "b"}
	q.Push(a)
	q.Push(b)

	q.Remove(a)
	assert.Equal(t, 1, q.Len())

	item, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", item.name)
}

func TestQueue_PopEmpty(t *testing.T) {
	q := sweepqueue.New[*testItem]()
	_, ok := q.Pop()
	assert.False(t, ok)
}

package delaunay

import "errors"

// ErrTriangleBufferTooSmall is returned when the caller-supplied triangle slice has capacity
// below max(0, 2N-2) for N input points.
var ErrTriangleBufferTooSmall = errors.New("delaunay: triangle buffer too small")

// ErrCoincidentPoints is returned when two input points compare equal under the configured
// epsilon. The sweep assumes distinct points; coincident input is outside the algorithm's
// defined behavior.
var ErrCoincidentPoints = errors.New("delaunay: coincident input points")

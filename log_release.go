//go:build !debug

package delaunay

// logDebugf is a no-op outside debug builds, keeping the sweep loop allocation-free.
func logDebugf(format string, v ...interface{}) {}

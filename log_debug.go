//go:build debug

package delaunay

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[delaunay DEBUG] ", log.LstdFlags)

// logDebugf logs a debug message. Only compiled into debug builds (-tags debug).
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

package renderer

import (
	"log"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
)

// DefaultLogger logs to the standard logger
type DefaultLogger struct{}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a logger that writes to standard output
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

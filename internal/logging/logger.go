// Package logging builds the structured logger shared by all components.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// New returns the application logger. Without verbose all output is discarded,
// with verbose a zap development logger writes everything down to V(1) to stderr.
func New(verbose bool) logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zapLogger)
}

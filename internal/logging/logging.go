// Package logging builds the zap logger used by the CLI.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger level and encoding.
type Options struct {
	// Level is debug, info, warn or error.
	Level string
	// Format is json or console.
	Format string
	// Verbose forces debug level.
	Verbose bool
	// RunID tags every entry. Empty generates a new one.
	RunID string
	// OutputPaths overrides the default stderr sink.
	OutputPaths []string
}

// New builds a logger writing to stderr. Every entry carries a run_id field.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if opts.Format == "console" {
		config = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	runID := opts.RunID
	if runID == "" {
		runID = NewRunID()
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("run_id", runID)), nil
}

// NewRunID returns a random identifier for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()
}

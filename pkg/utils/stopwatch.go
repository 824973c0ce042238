package utils

import (
	"time"

	"go.uber.org/zap"
)

// Stopwatch measures how long an operation took and logs it when stopped.
type Stopwatch struct {
	name    string
	started time.Time
	elapsed time.Duration
	running bool
	now     func() time.Time
	logger  *zap.Logger
}

// NewStopwatch returns a stopped stopwatch for the named operation.
func NewStopwatch(name string, logger *zap.Logger) *Stopwatch {
	return &Stopwatch{
		name:   name,
		now:    time.Now,
		logger: logger,
	}
}

// Start resets and starts the stopwatch.
func (s *Stopwatch) Start() *Stopwatch {
	s.started = s.now()
	s.elapsed = 0
	s.running = true
	return s
}

// Stop freezes the elapsed time and returns it. Calling Stop on a stopwatch
// that is not running returns the last measurement.
func (s *Stopwatch) Stop() time.Duration {
	if !s.running {
		return s.elapsed
	}
	s.elapsed = s.now().Sub(s.started)
	s.running = false
	s.logger.Debug("Stopwatch stopped", zap.String("operation", s.name), zap.Duration("elapsed", s.elapsed))
	return s.elapsed
}

// Elapsed returns the running time so far, or the last measurement once
// stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.started)
	}
	return s.elapsed
}

// Package timeit is a small elapsed-time accumulator used for diagnostics.
package timeit

import (
	"fmt"
	"time"

	"github.com/on-the-ground/rllt/internal/logging"
	"github.com/on-the-ground/rllt/shared/helper"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

type TimeSpan = timespan.TimeSpan

// Stopwatch accumulates the duration of every Start/Stop pair.
// Not safe for concurrent use.
type Stopwatch struct {
	total time.Duration
	spans []TimeSpan
	now   func() time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start marks the beginning of a measured section.
func (s *Stopwatch) Start() time.Time {
	return s.now()
}

// Stop closes the section opened by start and adds it to the total.
func (s *Stopwatch) Stop(start time.Time) TimeSpan {
	span := timespan.BetweenTimes(start, s.now())
	s.spans = append(s.spans, span)
	s.total += span.Duration()
	return span
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.total
}

// Spans returns a copy of the recorded sections in the order they were stopped.
func (s *Stopwatch) Spans() []TimeSpan {
	return append([]TimeSpan(nil), s.spans...)
}

func (s *Stopwatch) Reset() {
	s.total = 0
	s.spans = nil
}

func (s *Stopwatch) String() string {
	return fmt.Sprintf("Elapsed time is %.6f seconds", s.total.Seconds())
}

// Time runs fn and logs how long it took.
func Time[R any](logger *zap.Logger, fn func() R) R {
	logger = logging.OrNop(logger)
	start := time.Now()
	res := fn()
	elapsed := time.Since(start)
	logger.Info("function executed",
		zap.String("function", helper.FuncName(fn)),
		zap.String("seconds", fmt.Sprintf("%.4f", elapsed.Seconds())),
		zap.Duration("elapsed", elapsed),
	)
	return res
}

package timeit

import "time"

func NewStopwatchWithClock(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

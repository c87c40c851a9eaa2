package telemetry

import (
	"sync/atomic"
	"time"
)

// QueueMetrics aggregates process-wide counters for queue operations.
type QueueMetrics struct {
	puts        atomic.Uint64
	putFailures atomic.Uint64
	putWait     atomic.Int64

	gets        atomic.Uint64
	getFailures atomic.Uint64
	getWait     atomic.Int64
}

var defaultQueueMetrics QueueMetrics

// Default returns the global metrics.
func Default() *QueueMetrics {
	return &defaultQueueMetrics
}

// TracePut records a put attempt and returns a completion func that reports
// duration and error state.
func TracePut() func(error) {
	start := time.Now()
	defaultQueueMetrics.puts.Add(1)
	return func(err error) {
		defaultQueueMetrics.putWait.Add(time.Since(start).Nanoseconds())
		if err != nil {
			defaultQueueMetrics.putFailures.Add(1)
		}
	}
}

// TraceGet records a get attempt and returns a completion func that reports
// duration and error state.
func TraceGet() func(error) {
	start := time.Now()
	defaultQueueMetrics.gets.Add(1)
	return func(err error) {
		defaultQueueMetrics.getWait.Add(time.Since(start).Nanoseconds())
		if err != nil {
			defaultQueueMetrics.getFailures.Add(1)
		}
	}
}

// Snapshot is a point-in-time copy of the collected values.
type Snapshot struct {
	Puts        uint64
	PutFailures uint64
	AvgPutWait  time.Duration

	Gets        uint64
	GetFailures uint64
	AvgGetWait  time.Duration
}

// Snapshot returns the collected values. Averages are per attempt, including
// failed ones.
func (m *QueueMetrics) Snapshot() Snapshot {
	s := Snapshot{
		Puts:        m.puts.Load(),
		PutFailures: m.putFailures.Load(),
		Gets:        m.gets.Load(),
		GetFailures: m.getFailures.Load(),
	}
	if s.Puts > 0 {
		s.AvgPutWait = time.Duration(m.putWait.Load() / int64(s.Puts))
	}
	if s.Gets > 0 {
		s.AvgGetWait = time.Duration(m.getWait.Load() / int64(s.Gets))
	}
	return s
}

// Reset zeroes all counters.
func (m *QueueMetrics) Reset() {
	m.puts.Store(0)
	m.putFailures.Store(0)
	m.putWait.Store(0)
	m.gets.Store(0)
	m.getFailures.Store(0)
	m.getWait.Store(0)
}

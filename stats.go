package closequeue

import (
	"time"

	"github.com/xyhelper/closequeue/internal/telemetry"
)

// Stats is a snapshot of process-wide put/get counters, accumulated across
// all queues. Wait averages are per attempt and include failed attempts.
type Stats struct {
	Puts        uint64
	PutFailures uint64
	AvgPutWait  time.Duration

	Gets        uint64
	GetFailures uint64
	AvgGetWait  time.Duration
}

// CollectStats returns the current counters.
func CollectStats() Stats {
	s := telemetry.Default().Snapshot()
	return Stats{
		Puts:        s.Puts,
		PutFailures: s.PutFailures,
		AvgPutWait:  s.AvgPutWait,
		Gets:        s.Gets,
		GetFailures: s.GetFailures,
		AvgGetWait:  s.AvgGetWait,
	}
}

// ResetStats zeroes the counters. Intended for tests.
func ResetStats() {
	telemetry.Default().Reset()
}

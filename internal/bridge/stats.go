package bridge

import (
	"sync/atomic"
	"time"
)

// Stats counts frames across calls. It is the only state a Processor shares
// between concurrent calls.
type Stats struct {
	processed      atomic.Int64
	invalidArgs    atomic.Int64
	sizeMismatches atomic.Int64
	allocFailures  atomic.Int64
	pipelineErrors atomic.Int64
	totalNanos     atomic.Int64
}

type StatsSnapshot struct {
	Processed      int64
	InvalidArgs    int64
	SizeMismatches int64
	AllocFailures  int64
	PipelineErrors int64
	AverageTime    time.Duration
}

func (s StatsSnapshot) Failed() int64 {
	return s.InvalidArgs + s.SizeMismatches + s.AllocFailures + s.PipelineErrors
}

func (s *Stats) recordSuccess(elapsed time.Duration) {
	s.processed.Add(1)
	s.totalNanos.Add(int64(elapsed))
}

func (s *Stats) recordFailure(kind error) {
	switch kind {
	case ErrInvalidArgument:
		s.invalidArgs.Add(1)
	case ErrSizeMismatch:
		s.sizeMismatches.Add(1)
	case ErrAllocation:
		s.allocFailures.Add(1)
	default:
		s.pipelineErrors.Add(1)
	}
}

func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Processed:      s.processed.Load(),
		InvalidArgs:    s.invalidArgs.Load(),
		SizeMismatches: s.sizeMismatches.Load(),
		AllocFailures:  s.allocFailures.Load(),
		PipelineErrors: s.pipelineErrors.Load(),
	}
	if snap.Processed > 0 {
		snap.AverageTime = time.Duration(s.totalNanos.Load() / snap.Processed)
	}
	return snap
}

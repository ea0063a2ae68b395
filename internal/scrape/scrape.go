package scrape

import (
	"time"

	"rojobs/internal/domain"
)

// SourceReport is the outcome of one fetcher within a run.
type SourceReport struct {
	Source   string
	Label    string
	Records  int
	Skipped  int
	Err      error
	Duration time.Duration
}

func (r SourceReport) OK() bool { return r.Err == nil }

// Run is the merged result of one aggregation. Jobs are in completion
// order of their sources, which differs between runs.
type Run struct {
	ID      string
	Keyword string
	Jobs    []domain.JobRecord
	Sources []SourceReport
	Elapsed time.Duration
}

func (r Run) JobsPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(len(r.Jobs)) / secs
}

func (r Run) Failed() []SourceReport {
	var out []SourceReport
	for _, s := range r.Sources {
		if !s.OK() {
			out = append(out, s)
		}
	}
	return out
}

func labelFor(id string) string {
	if s, ok := domain.LookupSource(id); ok {
		return s.Label
	}
	return id
}

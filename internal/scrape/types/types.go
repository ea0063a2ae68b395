package types

import (
	"context"

	"rojobs/internal/domain"
)

type ScrapeResult struct {
	Source  string
	Records []domain.JobRecord
	Skipped []error // per-record failures, one entry per dropped record
}

// Fetcher is one job source. Fetch returns a *FetchError when the page
// could not be retrieved or parsed; Records is empty in that case.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, keyword string) (ScrapeResult, error)
}

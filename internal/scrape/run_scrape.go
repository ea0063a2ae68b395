package scrape

import (
	"context"
	"fmt"
	"time"

	"rojobs/internal/logger"
	"rojobs/internal/scrape/types"

	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 6

type RunOptions struct {
	Workers int
	Keyword string
	RunID   string

	// Called from worker goroutines; must be safe for concurrent use.
	OnStart func(source string)
	OnDone  func(SourceReport)
}

type outcome struct {
	res    types.ScrapeResult
	report SourceReport
}

// RunOnce runs every fetcher with at most opts.Workers in flight and waits
// for all of them. A failing or panicking fetcher contributes no records and
// does not affect the others.
func RunOnce(ctx context.Context, fetchers []types.Fetcher, opts RunOptions) Run {
	log := logger.Get().With().Str("run_id", opts.RunID).Logger()

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(workers)

	results := make(chan outcome, len(fetchers))

	for _, f := range fetchers {
		f := f

		g.Go(func() error {
			if opts.OnStart != nil {
				opts.OnStart(f.Name())
			}

			t0 := time.Now()
			res, err := safeFetch(ctx, f, opts.Keyword)
			rep := SourceReport{
				Source:   f.Name(),
				Label:    labelFor(f.Name()),
				Skipped:  len(res.Skipped),
				Err:      err,
				Duration: time.Since(t0),
			}
			if err != nil {
				log.Error().Str("source", f.Name()).Err(err).Msg("source failed")
				res.Records = nil
			} else {
				rep.Records = len(res.Records)
				log.Info().Str("source", f.Name()).
					Int("records", rep.Records).
					Int("skipped", rep.Skipped).
					Dur("took", rep.Duration).
					Msg("source done")
			}
			for _, se := range res.Skipped {
				log.Debug().Str("source", f.Name()).Err(se).Msg("record skipped")
			}

			results <- outcome{res: res, report: rep}
			if opts.OnDone != nil {
				opts.OnDone(rep)
			}
			return nil // best-effort: don’t cancel siblings
		})
	}

	_ = g.Wait()
	close(results)

	run := Run{ID: opts.RunID, Keyword: opts.Keyword}
	for o := range results {
		run.Jobs = append(run.Jobs, o.res.Records...)
		run.Sources = append(run.Sources, o.report)
	}
	run.Elapsed = time.Since(start)

	log.Info().Int("sources", len(run.Sources)).
		Int("failed", len(run.Failed())).
		Int("records", len(run.Jobs)).
		Dur("elapsed", run.Elapsed).
		Msg("run complete")
	return run
}

func safeFetch(ctx context.Context, f types.Fetcher, keyword string) (res types.ScrapeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = types.ScrapeResult{Source: f.Name()}
			err = fmt.Errorf("%s panic: %v", f.Name(), r)
		}
	}()
	return f.Fetch(ctx, keyword)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"rojobs/internal/config"
	"rojobs/internal/domain"
	"rojobs/internal/logger"
	"rojobs/internal/report"
	"rojobs/internal/scrape"
	"rojobs/internal/store"

	"github.com/google/uuid"
)

type env struct {
	getenv func(string) string
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
}

func (e env) clock() time.Time {
	if e.now != nil {
		return e.now()
	}
	return time.Now()
}

func run(ctx context.Context, e env) int {
	cfg, err := loadConfig(e.getenv)
	if err != nil {
		fmt.Fprintf(e.errOut, "config: %v\n", err)
		return 1
	}
	cfg, v := config.NormalizeAndValidate(cfg)
	if err := v.Err(); err != nil {
		fmt.Fprintln(e.errOut, err)
		return 1
	}

	logger.Init(cfg.App.LogLevel, e.errOut)
	log := logger.Get()
	for _, w := range v.Warnings {
		log.Warn().Msg(w)
	}

	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	printBanner(e.out)
	p := newPrompter(e.in, e.out)
	keyword := p.ask("Enter keyword to filter jobs (press Enter for all): ")
	selection := p.ask("Select sources (1-4, comma separated, or ALL): ")

	fetchers, err := scrape.BuildFetchers(cfg, scrape.NewClient(cfg), scrape.ParseSelection(selection))
	if err != nil {
		fmt.Fprintf(e.errOut, "sources: %v\n", err)
		return 1
	}
	if len(fetchers) == 0 {
		fmt.Fprintln(e.out, "\nNo sources enabled.")
		return 0
	}

	fmt.Fprintf(e.out, "\nStarting scrape with %d source(s)...\n\n", len(fetchers))
	prog := &progress{w: e.out, keyword: keyword}
	res := scrape.RunOnce(ctx, fetchers, scrape.RunOptions{
		Workers: cfg.Scrape.Workers,
		Keyword: keyword,
		RunID:   runID,
		OnStart: prog.start,
		OnDone:  prog.done,
	})

	rule := strings.Repeat("=", 80)
	fmt.Fprintf(e.out, "\n%s\nTotal jobs found: %d\n%s\n", rule, len(res.Jobs), rule)

	if len(res.Jobs) == 0 {
		fmt.Fprintln(e.out, "\nNo jobs found!")
		return 0
	}

	html, err := report.BuildHTML(res.Jobs, report.Options{
		RunID:       runID,
		Keyword:     keyword,
		GeneratedAt: e.clock(),
	})
	if err != nil {
		log.Error().Err(err).Msg("render report")
		return 1
	}

	snaps := store.Snapshots{Dir: cfg.App.OutputDir, Basename: cfg.App.Basename, Now: e.clock}
	paths, err := snaps.Save(ctx, res.Jobs, html)
	if err != nil {
		if errors.Is(err, store.ErrNoJobs) {
			fmt.Fprintln(e.out, "\nNo jobs found!")
			return 0
		}
		log.Error().Err(err).Msg("save snapshot")
		return 1
	}

	fmt.Fprintf(e.out, "\nSaved JSON: %s\n", paths.JSON)
	fmt.Fprintf(e.out, "Saved HTML: %s\n", paths.HTML)

	report.PrintStatistics(e.out, res.Jobs, report.DefaultTopCompanies)

	fmt.Fprintf(e.out, "\nTotal time: %.2f seconds\n", res.Elapsed.Seconds())
	fmt.Fprintf(e.out, "Speed: %.1f jobs/second\n", res.JobsPerSecond())
	fmt.Fprintf(e.out, "\nOpen %s in your browser!\n", paths.HTML)
	return 0
}

// loadConfig bootstraps config.yml in the data dir and applies env overrides.
func loadConfig(getenv func(string) string) (config.Config, error) {
	dataDir := strings.TrimSpace(getenv(config.EnvDataDir))
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return config.Config{}, err
	}

	path, _, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("bootstrap: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if err := config.OverlayEnv(&cfg, getenv); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func printBanner(w io.Writer) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "%s\nROMANIA JOBS SCRAPER\n%s\n\nAvailable sources:\n", rule, rule)
	for _, s := range domain.Catalog {
		fmt.Fprintf(w, "  %s. %s\n", s.Menu, s.Title)
	}
	fmt.Fprintln(w, "  ALL. All sources")
	fmt.Fprintln(w)
}

// progress serializes the per-source lines written from worker goroutines.
type progress struct {
	mu      sync.Mutex
	w       io.Writer
	keyword string
}

func (p *progress) start(source string) {
	s, ok := domain.LookupSource(source)
	if !ok {
		s = domain.Source{Label: source, Strategy: domain.StrategyMarkup}
	}
	kw := p.keyword
	if kw == "" {
		kw = "all"
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if s.Strategy == domain.StrategyMarkup {
		fmt.Fprintf(p.w, "Scraping %s (keyword: %s)...\n", s.Label, kw)
		return
	}
	// structured sources do not take a keyword
	fmt.Fprintf(p.w, "Scraping %s...\n", s.Label)
}

func (p *progress) done(r scrape.SourceReport) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !r.OK() {
		fmt.Fprintf(p.w, "   Error scraping %s: %v\n", r.Label, r.Err)
		return
	}
	fmt.Fprintf(p.w, "   Found %d jobs\n", r.Records)
}

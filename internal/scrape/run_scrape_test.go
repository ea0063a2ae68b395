package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rojobs/internal/config"
	"rojobs/internal/domain"
	"rojobs/internal/scrape/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFetcher struct {
	name    string
	records []domain.JobRecord
	err     error
	delay   time.Duration
	panics  bool
	gotKw   string
}

func (m *mockFetcher) Name() string { return m.name }

func (m *mockFetcher) Fetch(ctx context.Context, keyword string) (types.ScrapeResult, error) {
	m.gotKw = keyword
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	if m.panics {
		panic("boom")
	}
	if m.err != nil {
		return types.ScrapeResult{Source: m.name}, m.err
	}
	return types.ScrapeResult{Source: m.name, Records: m.records}, nil
}

func records(source string, n int) []domain.JobRecord {
	out := make([]domain.JobRecord, n)
	for i := range out {
		out[i] = domain.JobRecord{Title: "Same Title", Company: "Same Co", Source: source}.WithDefaults()
	}
	return out
}

func TestRunOnceConcatenatesWithoutDedup(t *testing.T) {
	a := &mockFetcher{name: "a", records: records("A", 3)}
	b := &mockFetcher{name: "b", records: records("B", 4)}

	run := RunOnce(context.Background(), []types.Fetcher{a, b}, RunOptions{Keyword: "go"})

	assert.Len(t, run.Jobs, 7)
	assert.Len(t, run.Sources, 2)
	assert.Empty(t, run.Failed())
	assert.Equal(t, "go", a.gotKw)
	assert.Equal(t, "go", b.gotKw)
}

func TestRunOnceIsolatesFailures(t *testing.T) {
	fetchErr := &types.FetchError{Source: "down", URL: "http://x", Err: errors.New("connection refused")}
	ok := &mockFetcher{name: "ok", records: records("OK", 2)}
	down := &mockFetcher{name: "down", err: fetchErr}
	crash := &mockFetcher{name: "crash", panics: true}

	var mu sync.Mutex
	var done []SourceReport
	run := RunOnce(context.Background(), []types.Fetcher{down, ok, crash}, RunOptions{
		OnDone: func(r SourceReport) {
			mu.Lock()
			done = append(done, r)
			mu.Unlock()
		},
	})

	assert.Len(t, run.Jobs, 2)
	assert.Len(t, done, 3)

	failed := run.Failed()
	require.Len(t, failed, 2)
	byName := map[string]SourceReport{}
	for _, f := range failed {
		byName[f.Source] = f
	}

	var fe *types.FetchError
	assert.True(t, errors.As(byName["down"].Err, &fe))
	assert.Equal(t, 0, byName["down"].Records)
	assert.Contains(t, byName["crash"].Err.Error(), "panic")
}

func TestRunOnceMergesInCompletionOrder(t *testing.T) {
	slow := &mockFetcher{name: "slow", records: records("Slow", 1), delay: 150 * time.Millisecond}
	fast := &mockFetcher{name: "fast", records: records("Fast", 1)}

	run := RunOnce(context.Background(), []types.Fetcher{slow, fast}, RunOptions{Workers: 2})

	require.Len(t, run.Jobs, 2)
	assert.Equal(t, "Fast", run.Jobs[0].Source)
	assert.Equal(t, "Slow", run.Jobs[1].Source)
}

type countingFetcher struct {
	inFlight, peak *int32
}

func (c countingFetcher) Name() string { return "counting" }

func (c countingFetcher) Fetch(ctx context.Context, _ string) (types.ScrapeResult, error) {
	n := atomic.AddInt32(c.inFlight, 1)
	defer atomic.AddInt32(c.inFlight, -1)
	for {
		p := atomic.LoadInt32(c.peak)
		if n <= p || atomic.CompareAndSwapInt32(c.peak, p, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	return types.ScrapeResult{Records: records("C", 1)}, nil
}

func TestRunOnceRespectsWorkerLimit(t *testing.T) {
	var inFlight, peak int32
	var fetchers []types.Fetcher
	for i := 0; i < 8; i++ {
		fetchers = append(fetchers, countingFetcher{inFlight: &inFlight, peak: &peak})
	}

	run := RunOnce(context.Background(), fetchers, RunOptions{Workers: 3})

	assert.Len(t, run.Jobs, 8)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&peak), int32(1))
}

func TestRunOnceNoFetchers(t *testing.T) {
	run := RunOnce(context.Background(), nil, RunOptions{})
	assert.Empty(t, run.Jobs)
	assert.Equal(t, float64(0), Run{}.JobsPerSecond())
}

func TestRunOnceWithRealSourcesOneDown(t *testing.T) {
	board := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div class="job-item"><h2>Go Dev</h2></div><div class="job-item"><h2>Go Dev</h2></div>`))
	}))
	defer board.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	cfg := config.Default()
	cfg.Sources.EJobs.URL = board.URL
	cfg.Sources.BestJobs.URL = board.URL
	cfg.Sources.Amazon.URL = deadURL

	fetchers, err := BuildFetchers(cfg, NewClient(cfg), []string{domain.SourceEJobs, domain.SourceBestJobs, domain.SourceAmazon})
	require.NoError(t, err)

	run := RunOnce(context.Background(), fetchers, RunOptions{Workers: DefaultWorkers, Keyword: "go"})

	assert.Len(t, run.Jobs, 4, "identical postings are kept, one per listing")
	require.Len(t, run.Failed(), 1)
	assert.Equal(t, domain.SourceAmazon, run.Failed()[0].Source)
	assert.Equal(t, "Amazon", run.Failed()[0].Label)
}

// Package keysight reads the schema.org JobPosting blocks embedded in the
// Keysight careers search page.
package keysight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rojobs/internal/domain"
	"rojobs/internal/scrape/types"
	"rojobs/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultURL      = "https://jobs.keysight.com/external/jobs"
	DefaultLocation = "Romania"
	DefaultLimit    = 100
	companyName     = "Keysight"
)

type Config struct {
	URL      string
	Location string
	Limit    int
	Timeout  time.Duration
}

type Scraper struct {
	cfg    Config
	client *util.Client
}

func New(cfg Config, client *util.Client) *Scraper {
	cfg.URL = util.FirstNonEmpty(cfg.URL, DefaultURL)
	cfg.Location = util.FirstNonEmpty(cfg.Location, DefaultLocation)
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return &Scraper{cfg: cfg, client: client}
}

func (s *Scraper) Name() string { return domain.SourceKeysight }

// SearchURL ignores keywords: the board only filters by location.
func (s *Scraper) SearchURL() (string, error) {
	return util.WithQuery(s.cfg.URL, url.Values{
		"location": {s.cfg.Location},
		"limit":    {strconv.Itoa(s.cfg.Limit)},
	})
}

func (s *Scraper) Fetch(ctx context.Context, _ string) (types.ScrapeResult, error) {
	res := types.ScrapeResult{Source: domain.SourceKeysight}

	u, err := s.SearchURL()
	if err != nil {
		return res, &types.FetchError{Source: domain.SourceKeysight, URL: s.cfg.URL, Err: err}
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	body, status, err := s.client.Get(ctx, u)
	if err != nil {
		return res, &types.FetchError{Source: domain.SourceKeysight, URL: u, Err: fmt.Errorf("keysight get: %w", err)}
	}
	if status < 200 || status > 299 {
		return res, &types.FetchError{Source: domain.SourceKeysight, URL: u, Err: types.StatusError(status)}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return res, &types.FetchError{Source: domain.SourceKeysight, URL: u, Err: fmt.Errorf("keysight parse html: %w", err)}
	}

	res.Records, res.Skipped = Parse(doc)
	return res, nil
}

// Parse maps every ld+json JobPosting in doc. Blocks that are not valid
// JSON are reported; valid blocks describing something else are ignored.
func Parse(doc *goquery.Document) ([]domain.JobRecord, []error) {
	var (
		out     []domain.JobRecord
		skipped []error
	)
	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, script *goquery.Selection) {
		raw := strings.TrimSpace(script.Text())
		if raw == "" {
			return
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			skipped = append(skipped, &types.RecordParseError{Source: domain.SourceKeysight, Index: i, Err: fmt.Errorf("keysight decode ld+json: %w", err)})
			return
		}
		for _, obj := range postings(v) {
			out = append(out, MapPosting(obj))
		}
	})
	return out, skipped
}

// postings returns the objects in v that carry a jobLocation.
func postings(v any) []map[string]any {
	switch x := v.(type) {
	case map[string]any:
		if _, ok := x["jobLocation"]; ok {
			return []map[string]any{x}
		}
	case []any:
		var out []map[string]any
		for _, e := range x {
			out = append(out, postings(e)...)
		}
		return out
	}
	return nil
}

// MapPosting converts one JobPosting object.
func MapPosting(p map[string]any) domain.JobRecord {
	blob, _ := json.Marshal(p)
	remote := util.MentionsRemote(string(blob)) ||
		strings.EqualFold(util.Stringify(p["jobLocationType"]), "TELECOMMUTE")

	return domain.JobRecord{
		Company:    companyName,
		Title:      util.Stringify(p["title"]),
		Location:   locality(p["jobLocation"]),
		ReqID:      identifier(p["identifier"]),
		Category:   util.Stringify(p["industry"]),
		JobType:    util.Stringify(p["employmentType"]),
		IsRemote:   domain.YesNo(remote),
		ApplyLink:  util.Stringify(p["url"]),
		PostedDate: util.Stringify(p["datePosted"]),
		Source:     "Keysight",
	}.WithDefaults()
}

func locality(v any) string {
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return ""
		}
		v = arr[0]
	}
	loc, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	addr, ok := loc["address"].(map[string]any)
	if !ok {
		return ""
	}
	return util.Stringify(addr["addressLocality"])
}

func identifier(v any) string {
	switch x := v.(type) {
	case map[string]any:
		return util.Stringify(x["value"])
	case string:
		return util.CleanText(x)
	}
	return ""
}

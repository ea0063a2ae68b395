// Package amazon queries the public amazon.jobs search API.
package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"rojobs/internal/domain"
	"rojobs/internal/scrape/types"
	"rojobs/internal/scrape/util"
)

const (
	DefaultURL         = "https://www.amazon.jobs/en/search.json"
	DefaultCountry     = "ROU"
	DefaultResultLimit = 100
	DefaultSort        = "recent"
	companyName        = "Amazon"
	countryName        = "Romania"
)

type Config struct {
	URL         string
	Country     string
	ResultLimit int
	Sort        string
	Timeout     time.Duration
}

type Scraper struct {
	cfg    Config
	client *util.Client
}

func New(cfg Config, client *util.Client) *Scraper {
	cfg.URL = util.FirstNonEmpty(cfg.URL, DefaultURL)
	cfg.Country = util.FirstNonEmpty(cfg.Country, DefaultCountry)
	cfg.Sort = util.FirstNonEmpty(cfg.Sort, DefaultSort)
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}
	return &Scraper{cfg: cfg, client: client}
}

func (s *Scraper) Name() string { return domain.SourceAmazon }

// SearchURL ignores keywords; results are filtered by country only.
func (s *Scraper) SearchURL() (string, error) {
	return util.WithQuery(s.cfg.URL, url.Values{
		"country":      {s.cfg.Country},
		"result_limit": {strconv.Itoa(s.cfg.ResultLimit)},
		"sort":         {s.cfg.Sort},
	})
}

type searchResponse struct {
	Jobs []json.RawMessage `json:"jobs"`
}

func (s *Scraper) Fetch(ctx context.Context, _ string) (types.ScrapeResult, error) {
	res := types.ScrapeResult{Source: domain.SourceAmazon}

	u, err := s.SearchURL()
	if err != nil {
		return res, &types.FetchError{Source: domain.SourceAmazon, URL: s.cfg.URL, Err: err}
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	body, status, err := s.client.Get(ctx, u)
	if err != nil {
		return res, &types.FetchError{Source: domain.SourceAmazon, URL: u, Err: fmt.Errorf("amazon get: %w", err)}
	}
	if status != 200 {
		return res, &types.FetchError{Source: domain.SourceAmazon, URL: u, Err: types.StatusError(status)}
	}

	res.Records, res.Skipped, err = Parse(body, util.Origin(s.cfg.URL))
	if err != nil {
		return res, &types.FetchError{Source: domain.SourceAmazon, URL: u, Err: err}
	}
	return res, nil
}

// Parse decodes a search.json body. A malformed envelope is an error for
// the whole response; a malformed entry only drops that entry.
func Parse(body []byte, origin string) ([]domain.JobRecord, []error, error) {
	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, nil, fmt.Errorf("amazon decode: %w", err)
	}

	out := make([]domain.JobRecord, 0, len(sr.Jobs))
	var skipped []error
	for i, raw := range sr.Jobs {
		var job map[string]any
		if err := json.Unmarshal(raw, &job); err != nil {
			skipped = append(skipped, &types.RecordParseError{Source: domain.SourceAmazon, Index: i, Err: err})
			continue
		}
		if job == nil {
			skipped = append(skipped, &types.RecordParseError{Source: domain.SourceAmazon, Index: i, Err: fmt.Errorf("null job entry")})
			continue
		}
		out = append(out, MapJob(job, origin))
	}
	return out, skipped, nil
}

// MapJob converts one search result entry.
func MapJob(job map[string]any, origin string) domain.JobRecord {
	location := countryName
	if city := util.Stringify(job["city"]); city != "" {
		location = city + ", " + countryName
	}

	return domain.JobRecord{
		Company:    companyName,
		Title:      util.Stringify(job["title"]),
		Location:   location,
		ReqID:      util.Stringify(job["id_icims"]),
		Category:   util.Stringify(job["job_category"]),
		JobType:    util.Stringify(job["job_schedule_type"]),
		IsRemote:   domain.YesNo(util.Truthy(job["is_remote"])),
		ApplyLink:  util.Resolve(origin, util.Stringify(job["job_path"])),
		PostedDate: util.Stringify(job["posted_date"]),
		Source:     "Amazon",
	}.WithDefaults()
}

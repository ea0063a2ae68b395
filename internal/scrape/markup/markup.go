// Package markup scrapes job boards that only expose an HTML search page.
// Listings are found by tag and class name and mapped best-effort.
package markup

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"rojobs/internal/domain"
	"rojobs/internal/scrape/types"
	"rojobs/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

const DefaultMaxListings = 30

// Layout describes where a board puts its listing fields.
type Layout struct {
	ContainerTags    []string
	ContainerClasses []string
	TitleSelector    string
	CompanyClasses   []string
	LocationClasses  []string
}

type Config struct {
	URL         string
	Timeout     time.Duration
	MaxListings int
}

type Scraper struct {
	src    domain.Source
	layout Layout
	cfg    Config
	client *util.Client
}

func New(src domain.Source, layout Layout, cfg Config, client *util.Client) *Scraper {
	if cfg.MaxListings <= 0 {
		cfg.MaxListings = DefaultMaxListings
	}
	return &Scraper{src: src, layout: layout, cfg: cfg, client: client}
}

func (s *Scraper) Name() string { return s.src.ID }

// SearchURL is the page requested for keyword.
func (s *Scraper) SearchURL(keyword string) (string, error) {
	return util.WithQuery(s.cfg.URL, url.Values{"q": {strings.TrimSpace(keyword)}})
}

func (s *Scraper) Fetch(ctx context.Context, keyword string) (types.ScrapeResult, error) {
	res := types.ScrapeResult{Source: s.src.ID}

	u, err := s.SearchURL(keyword)
	if err != nil {
		return res, &types.FetchError{Source: s.src.ID, URL: s.cfg.URL, Err: err}
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	body, status, err := s.client.Get(ctx, u)
	if err != nil {
		return res, &types.FetchError{Source: s.src.ID, URL: u, Err: fmt.Errorf("%s get: %w", s.src.ID, err)}
	}
	if status < 200 || status > 299 {
		return res, &types.FetchError{Source: s.src.ID, URL: u, Err: types.StatusError(status)}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return res, &types.FetchError{Source: s.src.ID, URL: u, Err: fmt.Errorf("%s parse html: %w", s.src.ID, err)}
	}

	res.Records, res.Skipped = Parse(doc, s.src, s.layout, Meta{
		Keyword:     keyword,
		ApplyLink:   util.SiteRoot(s.cfg.URL),
		MaxListings: s.cfg.MaxListings,
	})
	return res, nil
}

// Meta carries the per-run values attached to every listing.
type Meta struct {
	Keyword     string
	ApplyLink   string
	MaxListings int
}

// Parse maps listing containers in doc to records. A container without a
// usable title is reported as a *types.RecordParseError and skipped.
func Parse(doc *goquery.Document, src domain.Source, l Layout, meta Meta) ([]domain.JobRecord, []error) {
	category := "Various"
	if strings.TrimSpace(meta.Keyword) != "" {
		category = "IT"
	}

	cards := doc.Find(util.ClassSelector(l.ContainerTags, l.ContainerClasses))
	if meta.MaxListings > 0 && cards.Length() > meta.MaxListings {
		cards = cards.Slice(0, meta.MaxListings)
	}

	var (
		out     []domain.JobRecord
		skipped []error
	)
	cards.Each(func(i int, card *goquery.Selection) {
		title, _ := util.FirstText(card, l.TitleSelector)
		if title == "" {
			skipped = append(skipped, &types.RecordParseError{Source: src.ID, Index: i, Err: types.ErrMissingTitle})
			return
		}
		company, _ := util.FirstText(card, util.ClassSelector(nil, l.CompanyClasses))
		location, _ := util.FirstText(card, util.ClassSelector(nil, l.LocationClasses))

		out = append(out, domain.JobRecord{
			Company:   company,
			Title:     title,
			Location:  location,
			Category:  category,
			ApplyLink: meta.ApplyLink,
			Source:    src.Label,
		}.WithDefaults())
	})
	return out, skipped
}

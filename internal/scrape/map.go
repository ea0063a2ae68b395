package scrape

import (
	"fmt"

	"rojobs/internal/config"
	"rojobs/internal/domain"
	"rojobs/internal/scrape/amazon"
	"rojobs/internal/scrape/bestjobs"
	"rojobs/internal/scrape/ejobs"
	"rojobs/internal/scrape/keysight"
	"rojobs/internal/scrape/markup"
	"rojobs/internal/scrape/types"
	"rojobs/internal/scrape/util"
)

type constructor func(cfg config.Config, client *util.Client) types.Fetcher

var registry = map[string]constructor{
	domain.SourceEJobs: func(cfg config.Config, client *util.Client) types.Fetcher {
		return ejobs.New(mapMarkup(cfg.Sources.EJobs), client)
	},
	domain.SourceBestJobs: func(cfg config.Config, client *util.Client) types.Fetcher {
		return bestjobs.New(mapMarkup(cfg.Sources.BestJobs), client)
	},
	domain.SourceKeysight: func(cfg config.Config, client *util.Client) types.Fetcher {
		k := cfg.Sources.Keysight
		return keysight.New(keysight.Config{
			URL:      k.URL,
			Location: k.Location,
			Limit:    k.Limit,
			Timeout:  config.Seconds(k.TimeoutSeconds),
		}, client)
	},
	domain.SourceAmazon: func(cfg config.Config, client *util.Client) types.Fetcher {
		a := cfg.Sources.Amazon
		return amazon.New(amazon.Config{
			URL:         a.URL,
			Country:     a.Country,
			ResultLimit: a.ResultLimit,
			Sort:        a.Sort,
			Timeout:     config.Seconds(a.TimeoutSeconds),
		}, client)
	},
}

// NewClient builds the one request configuration every source shares.
func NewClient(cfg config.Config) *util.Client {
	return util.NewClient(util.ClientOptions{
		UserAgent:      cfg.Scrape.UserAgent,
		Accept:         cfg.Scrape.Accept,
		AcceptLanguage: cfg.Scrape.AcceptLanguage,
		Limiter:        util.NewHostLimiter(cfg.Scrape.RequestsPerSecond, cfg.Scrape.Burst),
	})
}

// BuildFetchers returns fetchers for ids, or for every enabled source when
// ids is empty. Explicitly requested sources run even when disabled.
func BuildFetchers(cfg config.Config, client *util.Client, ids []string) ([]types.Fetcher, error) {
	if len(ids) == 0 {
		ids = EnabledSources(cfg)
	}

	out := make([]types.Fetcher, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		ctor, ok := registry[id]
		if !ok {
			return nil, fmt.Errorf("unknown source %q", id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, ctor(cfg, client))
	}
	return out, nil
}

// EnabledSources lists enabled source ids in catalog order.
func EnabledSources(cfg config.Config) []string {
	enabled := map[string]bool{
		domain.SourceEJobs:    cfg.Sources.EJobs.Enabled,
		domain.SourceBestJobs: cfg.Sources.BestJobs.Enabled,
		domain.SourceKeysight: cfg.Sources.Keysight.Enabled,
		domain.SourceAmazon:   cfg.Sources.Amazon.Enabled,
	}
	var ids []string
	for _, s := range domain.Catalog {
		if enabled[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func mapMarkup(m config.MarkupSource) markup.Config {
	return markup.Config{
		URL:         m.URL,
		Timeout:     config.Seconds(m.TimeoutSeconds),
		MaxListings: m.MaxListings,
	}
}

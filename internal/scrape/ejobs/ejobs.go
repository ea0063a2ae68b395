package ejobs

import (
	"rojobs/internal/domain"
	"rojobs/internal/scrape/markup"
	"rojobs/internal/scrape/util"
)

const DefaultURL = "https://www.ejobs.ro/locuri-munca"

var Layout = markup.Layout{
	ContainerTags:    []string{"div", "article"},
	ContainerClasses: []string{"job-item", "JobListItem"},
	TitleSelector:    "h2, h3, a",
	CompanyClasses:   []string{"company-name", "CompanyName"},
	LocationClasses:  []string{"location", "Location"},
}

func New(cfg markup.Config, client *util.Client) *markup.Scraper {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	src, _ := domain.LookupSource(domain.SourceEJobs)
	return markup.New(src, Layout, cfg, client)
}

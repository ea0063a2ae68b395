package bestjobs

import (
	"rojobs/internal/domain"
	"rojobs/internal/scrape/markup"
	"rojobs/internal/scrape/util"
)

const DefaultURL = "https://www.bestjobs.ro/locuri-de-munca"

var Layout = markup.Layout{
	ContainerTags:    []string{"div", "li"},
	ContainerClasses: []string{"job-item", "job-listing"},
	TitleSelector:    "h2, h3, a",
	CompanyClasses:   []string{"company", "employer"},
	LocationClasses:  []string{"location"},
}

func New(cfg markup.Config, client *util.Client) *markup.Scraper {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	src, _ := domain.LookupSource(domain.SourceBestJobs)
	return markup.New(src, Layout, cfg, client)
}

package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return fmt.Errorf("config validation failed:\n- %s", strings.Join(v.Errors, "\n- "))
}

var logLevels = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}

// NormalizeAndValidate returns a trimmed copy of cfg and what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.OutputDir = strings.TrimSpace(out.App.OutputDir)
	out.App.Basename = strings.TrimSpace(out.App.Basename)
	out.App.LogLevel = strings.ToLower(strings.TrimSpace(out.App.LogLevel))
	out.Sources.EJobs.URL = strings.TrimSpace(out.Sources.EJobs.URL)
	out.Sources.BestJobs.URL = strings.TrimSpace(out.Sources.BestJobs.URL)
	out.Sources.Keysight.URL = strings.TrimSpace(out.Sources.Keysight.URL)
	out.Sources.Amazon.URL = strings.TrimSpace(out.Sources.Amazon.URL)

	if out.App.OutputDir == "" {
		out.App.OutputDir = "."
	}
	if out.App.Basename == "" {
		res.addErr("app.basename is required")
	} else if strings.ContainsAny(out.App.Basename, `/\`) {
		res.addErr("app.basename must be a file name, not a path: %q", out.App.Basename)
	}
	if out.App.LogLevel == "" {
		out.App.LogLevel = "info"
	} else if !logLevels[out.App.LogLevel] {
		res.addErr("app.log_level must be one of trace|debug|info|warn|error, got %q", out.App.LogLevel)
	}

	// scrape
	if out.Scrape.Workers <= 0 {
		res.addErr("scrape.workers must be > 0")
	} else if out.Scrape.Workers > 32 {
		res.addWarn("scrape.workers is %d; only 4 sources exist, extra workers stay idle.", out.Scrape.Workers)
	}
	if out.Scrape.RequestsPerSecond < 0 {
		res.addErr("scrape.requests_per_second must be >= 0 (0 disables throttling)")
	}
	if out.Scrape.RequestsPerSecond > 0 && out.Scrape.Burst < 1 {
		out.Scrape.Burst = 1
	}
	if strings.TrimSpace(out.Scrape.UserAgent) == "" {
		res.addWarn("scrape.user_agent is empty; the default browser user agent will be sent.")
	}

	// sources
	checkURL := func(name, raw string) {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			res.addErr("sources.%s.url must be an absolute http(s) URL, got %q", name, raw)
		}
	}
	checkTimeout := func(name string, secs int) {
		if secs <= 0 {
			res.addErr("sources.%s.timeout_seconds must be > 0", name)
		}
	}

	markup := []struct {
		name string
		src  MarkupSource
	}{
		{"ejobs", out.Sources.EJobs},
		{"bestjobs", out.Sources.BestJobs},
	}
	for _, m := range markup {
		checkURL(m.name, m.src.URL)
		checkTimeout(m.name, m.src.TimeoutSeconds)
		if m.src.MaxListings <= 0 {
			res.addErr("sources.%s.max_listings must be > 0", m.name)
		}
	}

	checkURL("keysight", out.Sources.Keysight.URL)
	checkTimeout("keysight", out.Sources.Keysight.TimeoutSeconds)
	if out.Sources.Keysight.Limit <= 0 {
		res.addErr("sources.keysight.limit must be > 0")
	}

	checkURL("amazon", out.Sources.Amazon.URL)
	checkTimeout("amazon", out.Sources.Amazon.TimeoutSeconds)
	if out.Sources.Amazon.ResultLimit <= 0 {
		res.addErr("sources.amazon.result_limit must be > 0")
	}

	if !out.Sources.EJobs.Enabled && !out.Sources.BestJobs.Enabled &&
		!out.Sources.Keysight.Enabled && !out.Sources.Amazon.Enabled {
		res.addWarn("all sources are disabled; only explicitly selected sources will run.")
	}

	return out, res
}

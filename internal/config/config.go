// internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type MarkupSource struct {
	Enabled        bool   `yaml:"enabled"`
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxListings    int    `yaml:"max_listings"`
}

type KeysightSource struct {
	Enabled        bool   `yaml:"enabled"`
	URL            string `yaml:"url"`
	Location       string `yaml:"location"`
	Limit          int    `yaml:"limit"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AmazonSource struct {
	Enabled        bool   `yaml:"enabled"`
	URL            string `yaml:"url"`
	Country        string `yaml:"country"`
	ResultLimit    int    `yaml:"result_limit"`
	Sort           string `yaml:"sort"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type Config struct {
	App struct {
		OutputDir string `yaml:"output_dir"`
		Basename  string `yaml:"basename"`
		LogLevel  string `yaml:"log_level"`
	} `yaml:"app"`

	Scrape struct {
		Workers           int     `yaml:"workers"`
		UserAgent         string  `yaml:"user_agent"`
		Accept            string  `yaml:"accept"`
		AcceptLanguage    string  `yaml:"accept_language"`
		RequestsPerSecond float64 `yaml:"requests_per_second"` // 0 disables throttling
		Burst             int     `yaml:"burst"`
	} `yaml:"scrape"`

	Sources struct {
		EJobs    MarkupSource   `yaml:"ejobs"`
		BestJobs MarkupSource   `yaml:"bestjobs"`
		Keysight KeysightSource `yaml:"keysight"`
		Amazon   AmazonSource   `yaml:"amazon"`
	} `yaml:"sources"`
}

func Default() Config {
	var cfg Config

	cfg.App.OutputDir = "."
	cfg.App.Basename = "romania_jobs"
	cfg.App.LogLevel = "info"

	cfg.Scrape.Workers = 6
	cfg.Scrape.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	cfg.Scrape.Accept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	cfg.Scrape.AcceptLanguage = "en-US,en;q=0.5"
	cfg.Scrape.Burst = 1

	cfg.Sources.EJobs = MarkupSource{Enabled: true, URL: "https://www.ejobs.ro/locuri-munca", TimeoutSeconds: 15, MaxListings: 30}
	cfg.Sources.BestJobs = MarkupSource{Enabled: true, URL: "https://www.bestjobs.ro/locuri-de-munca", TimeoutSeconds: 15, MaxListings: 30}
	cfg.Sources.Keysight = KeysightSource{Enabled: true, URL: "https://jobs.keysight.com/external/jobs", Location: "Romania", Limit: 100, TimeoutSeconds: 15}
	cfg.Sources.Amazon = AmazonSource{Enabled: true, URL: "https://www.amazon.jobs/en/search.json", Country: "ROU", ResultLimit: 100, Sort: "recent", TimeoutSeconds: 10}
	return cfg
}

// Load reads path over the defaults, so omitted keys keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

package config

import (
	"time"

	"github.com/pevans/pressroom/scraper"
)

// DefaultBaseURL is the listing scraped when no configuration overrides it.
const DefaultBaseURL = "https://news.sap.com/press-room/partner-news/"

// Config represents pressroom configuration.
type Config struct {
	BaseURL       string              `yaml:"base_url"`
	OutputPath    string              `yaml:"output_path"`
	UserAgent     string              `yaml:"user_agent"`
	Timeout       time.Duration       `yaml:"timeout"`
	RateLimit     time.Duration       `yaml:"rate_limit"` // minimum interval between page requests
	RespectRobots bool                `yaml:"respect_robots"`
	LogLevel      string              `yaml:"log_level"`
	HistoryDSN    string              `yaml:"history_dsn"` // empty disables the run history
	List          *scraper.ListConfig `yaml:"list"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		OutputPath: "output.csv",
		Timeout:    10 * time.Second,
		LogLevel:   "info",
		List:       scraper.NewListConfig(),
	}
}

// applyDefaults fills unset fields from Default.
func (c *Config) applyDefaults() {
	d := Default()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.OutputPath == "" {
		c.OutputPath = d.OutputPath
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.List == nil {
		c.List = d.List
	} else {
		c.List.Merge(d.List)
	}
}

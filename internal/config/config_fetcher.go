// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"
)

// FetcherConfig holds the scrape settings for a single page fetch.
type FetcherConfig struct {
	URL      string        // Page the case figures are scraped from
	Selector string        // CSS selector matching the case figure nodes
	Timeout  time.Duration // HTTP timeout for the fetch
}

// NewFetcherConfig creates and returns a new FetcherConfig by parsing flags and environment variables.
func NewFetcherConfig() *FetcherConfig {
	cfg := &FetcherConfig{
		URL:      DefaultScrapeURL,
		Selector: DefaultScrapeSelector,
		Timeout:  DefaultScrapeTimeout * time.Second,
	}

	var fURL, fSelector, fConf strFlag
	var fTimeout intFlag
	flag.Var(&fURL, "u", "page to scrape case figures from")
	flag.Var(&fSelector, "s", "CSS selector for case figure nodes")
	flag.Var(&fTimeout, "t", "scrape timeout (seconds)")
	flag.Var(&fConf, "c", "Path to JSON config file")
	flag.Var(&fConf, "config", "Path to JSON config file (alias)")
	flag.Parse()

	if fURL.set {
		cfg.URL = fURL.v
	}
	if fSelector.set {
		cfg.Selector = fSelector.v
	}
	if fTimeout.set {
		cfg.Timeout = time.Duration(fTimeout.v) * time.Second
	}

	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}
	if fConf.v != "" {
		if js, err := loadFetcherJSON(fConf.v); err == nil {
			if js.ScrapeURL != nil && !fURL.set {
				cfg.URL = *js.ScrapeURL
			}
			if js.ScrapeSelector != nil && !fSelector.set {
				cfg.Selector = *js.ScrapeSelector
			}
			if js.ScrapeTimeout != nil && !fTimeout.set {
				if sec, err := parseDurationSeconds(*js.ScrapeTimeout); err == nil {
					cfg.Timeout = time.Duration(sec) * time.Second
				}
			}
		}
	}

	readFetcherEnvironment(cfg)
	return cfg
}

func readFetcherEnvironment(cfg *FetcherConfig) {
	if u := os.Getenv("SCRAPE_URL"); u != "" {
		cfg.URL = u
	}

	if sel := os.Getenv("SCRAPE_SELECTOR"); sel != "" {
		cfg.Selector = sel
	}

	scrapeTimeoutEnv := os.Getenv("SCRAPE_TIMEOUT")
	if scrapeTimeoutEnv != "" {
		v, err := strconv.Atoi(scrapeTimeoutEnv)
		if err == nil {
			cfg.Timeout = time.Duration(v) * time.Second
		} else {
			log.Printf("invalid SCRAPE_TIMEOUT env var: %v", err)
		}
	}
}

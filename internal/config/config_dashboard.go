// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Default scrape settings for the ministry of health page.
const (
	DefaultScrapeURL      = "https://pusatkrisis.kemkes.go.id/covid-19-id/"
	DefaultScrapeSelector = ".covid-case strong"
	DefaultScrapeTimeout  = 20
)

// DashboardConfig holds the configuration settings for the dashboard server.
type DashboardConfig struct {
	Addr            string // Server address
	Logger          *zap.SugaredLogger
	RefreshInterval int    // Interval between snapshot refreshes (in seconds)
	ProvincesFile   string // Path to the province dataset CSV
	ScrapeURL       string // Page the case figures are scraped from
	ScrapeSelector  string // CSS selector matching the case figure nodes
	ScrapeTimeout   int    // Scrape HTTP timeout (in seconds)
}

// NewDashboardConfig creates and returns a new DashboardConfig by parsing flags and environment variables.
func NewDashboardConfig() *DashboardConfig {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "dashboard.log"}
	logger := zap.Must(logCfg.Build())

	// 0) defaults
	cfg := &DashboardConfig{
		Addr:            "localhost:8080",
		RefreshInterval: 300,
		ProvincesFile:   "./data/provinces.csv",
		ScrapeURL:       DefaultScrapeURL,
		ScrapeSelector:  DefaultScrapeSelector,
		ScrapeTimeout:   DefaultScrapeTimeout,
	}

	// 1) flags
	var fAddr strFlag
	fAddr.v = cfg.Addr
	var fRefresh intFlag
	fRefresh.v = cfg.RefreshInterval
	var fProvinces strFlag
	fProvinces.v = cfg.ProvincesFile
	var fURL strFlag
	fURL.v = cfg.ScrapeURL
	var fSelector strFlag
	fSelector.v = cfg.ScrapeSelector
	var fTimeout intFlag
	fTimeout.v = cfg.ScrapeTimeout
	var fConf strFlag // -c / -config

	flag.Var(&fAddr, "a", "HTTP server address")
	flag.Var(&fRefresh, "i", "refresh interval (seconds)")
	flag.Var(&fProvinces, "f", "path to province dataset CSV")
	flag.Var(&fURL, "u", "page to scrape case figures from")
	flag.Var(&fSelector, "s", "CSS selector for case figure nodes")
	flag.Var(&fTimeout, "t", "scrape timeout (seconds)")
	flag.Var(&fConf, "c", "Path to JSON config file")
	flag.Var(&fConf, "config", "Path to JSON config file (alias)")
	flag.Parse()

	cfg.Addr = fAddr.v
	cfg.RefreshInterval = fRefresh.v
	cfg.ProvincesFile = fProvinces.v
	cfg.ScrapeURL = fURL.v
	cfg.ScrapeSelector = fSelector.v
	cfg.ScrapeTimeout = fTimeout.v

	// 3) JSON (lowest priority)
	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}

	if fConf.v != "" {
		if js, err := loadDashboardJSON(fConf.v); err == nil {
			if js.Address != nil && !fAddr.set {
				cfg.Addr = *js.Address
			}
			if js.RefreshInterval != nil && !fRefresh.set {
				if sec, err := parseDurationSeconds(*js.RefreshInterval); err == nil {
					cfg.RefreshInterval = sec
				}
			}
			if js.ProvincesFile != nil && !fProvinces.set {
				cfg.ProvincesFile = *js.ProvincesFile
			}
			if js.ScrapeURL != nil && !fURL.set {
				cfg.ScrapeURL = *js.ScrapeURL
			}
			if js.ScrapeSelector != nil && !fSelector.set {
				cfg.ScrapeSelector = *js.ScrapeSelector
			}
			if js.ScrapeTimeout != nil && !fTimeout.set {
				if sec, err := parseDurationSeconds(*js.ScrapeTimeout); err == nil {
					cfg.ScrapeTimeout = sec
				}
			}
		}
	}

	readDashboardEnvironment(cfg)

	cfg.Logger = logger.Sugar()
	return cfg
}

func readDashboardEnvironment(cfg *DashboardConfig) {
	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.Addr = addr
	}

	refreshIntervalEnv := os.Getenv("REFRESH_INTERVAL")
	if refreshIntervalEnv != "" {
		v, err := strconv.Atoi(refreshIntervalEnv)
		if err == nil {
			cfg.RefreshInterval = v
		} else {
			log.Printf("invalid REFRESH_INTERVAL env var: %v", err)
		}
	}

	if pf := os.Getenv("PROVINCES_FILE"); pf != "" {
		cfg.ProvincesFile = pf
	}

	if u := os.Getenv("SCRAPE_URL"); u != "" {
		cfg.ScrapeURL = u
	}

	if sel := os.Getenv("SCRAPE_SELECTOR"); sel != "" {
		cfg.ScrapeSelector = sel
	}

	scrapeTimeoutEnv := os.Getenv("SCRAPE_TIMEOUT")
	if scrapeTimeoutEnv != "" {
		v, err := strconv.Atoi(scrapeTimeoutEnv)
		if err == nil {
			cfg.ScrapeTimeout = v
		} else {
			log.Printf("invalid SCRAPE_TIMEOUT env var: %v", err)
		}
	}
}

// Fetcher derives the scrape settings in the form the scraper consumes.
func (cfg *DashboardConfig) Fetcher() *FetcherConfig {
	return &FetcherConfig{
		URL:      cfg.ScrapeURL,
		Selector: cfg.ScrapeSelector,
		Timeout:  time.Duration(cfg.ScrapeTimeout) * time.Second,
	}
}

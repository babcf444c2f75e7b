// internal/config/json.go
package config

import (
	"encoding/json"
	"os"
	"time"
)

type dashboardJSON struct {
	Address         *string `json:"address"`
	RefreshInterval *string `json:"refresh_interval"` // "300s"
	ProvincesFile   *string `json:"provinces_file"`
	ScrapeURL       *string `json:"scrape_url"`
	ScrapeSelector  *string `json:"scrape_selector"`
	ScrapeTimeout   *string `json:"scrape_timeout"` // "20s"
}

type fetcherJSON struct {
	ScrapeURL      *string `json:"scrape_url"`
	ScrapeSelector *string `json:"scrape_selector"`
	ScrapeTimeout  *string `json:"scrape_timeout"`
}

func loadDashboardJSON(path string) (*dashboardJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg dashboardJSON
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFetcherJSON(path string) (*fetcherJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c fetcherJSON
	return &c, json.Unmarshal(b, &c)
}

func parseDurationSeconds(s string) (int, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return int(d / time.Second), nil
}

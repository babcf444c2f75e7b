package config

import (
	"os"
	"testing"
)

func BenchmarkReadDashboardEnvironment(b *testing.B) {
	_ = os.Setenv("ADDRESS", "127.0.0.1:9999")
	_ = os.Setenv("REFRESH_INTERVAL", "60")
	_ = os.Setenv("PROVINCES_FILE", "/tmp/provinces.csv")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg := &DashboardConfig{}
		readDashboardEnvironment(cfg)
	}
}

func BenchmarkReadFetcherEnvironment(b *testing.B) {
	_ = os.Setenv("SCRAPE_URL", "http://example.com/covid")
	_ = os.Setenv("SCRAPE_SELECTOR", ".cases b")
	_ = os.Setenv("SCRAPE_TIMEOUT", "5")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg := &FetcherConfig{}
		readFetcherEnvironment(cfg)
	}
}

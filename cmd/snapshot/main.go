package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/and161185/covid19-dashboard/internal/config"
	"github.com/and161185/covid19-dashboard/internal/scraper"
)

// One acquisition, snapshot on stdout. The page-load flow of the dashboard
// without the dashboard.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.NewFetcherConfig()

	logger := zap.Must(zap.NewProduction()).Sugar()

	scr := scraper.New(cfg, logger)
	snap := scr.Acquire(context.Background())

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		logger.Fatalf("marshal snapshot: %v", err)
	}
	fmt.Println(string(out))
}

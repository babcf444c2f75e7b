package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/and161185/covid19-dashboard/internal/buildinfo"
	"github.com/and161185/covid19-dashboard/internal/config"
	"github.com/and161185/covid19-dashboard/internal/province"
	"github.com/and161185/covid19-dashboard/internal/refresher"
	"github.com/and161185/covid19-dashboard/internal/scraper"
	"github.com/and161185/covid19-dashboard/internal/server"
	"github.com/and161185/covid19-dashboard/storage/inmemory"
)

func main() {
	buildinfo.PrintBuildInfo()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewDashboardConfig()

	store := inmemory.NewMemStorage()
	scr := scraper.New(config.Fetcher(), config.Logger)
	ref := refresher.NewRefresher(scr, store, config)

	srv := server.NewServer(store, config)
	srv.Refresher = ref

	ds, err := province.Load(config.ProvincesFile)
	if err != nil {
		config.Logger.Errorf("province dataset unavailable: %v", err)
	} else {
		srv.Provinces = ds
	}

	config.Logger.Infof("Dashboard config: Addr=%s, RefreshInterval=%d, ProvincesFile=%q, ScrapeURL=%s",
		config.Addr,
		config.RefreshInterval,
		config.ProvincesFile,
		config.ScrapeURL,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ref.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	if err := g.Wait(); err != nil {
		config.Logger.Fatal(err)
	}
}

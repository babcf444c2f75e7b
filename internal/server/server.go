// Package server exposes the dashboard data over HTTP for the display layer.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/and161185/covid19-dashboard/internal/config"
	"github.com/and161185/covid19-dashboard/internal/province"
	"github.com/and161185/covid19-dashboard/internal/server/middleware"
	"github.com/and161185/covid19-dashboard/model"
)

// Storage is the read side of the snapshot store.
type Storage interface {
	Get(ctx context.Context) (model.Snapshot, error)
	Ping(ctx context.Context) error
}

// Refresher triggers one snapshot acquisition on demand.
type Refresher interface {
	RefreshNow(ctx context.Context) (model.Snapshot, error)
}

// Server holds the collaborators the handlers read from. Provinces and
// Refresher are optional: a missing dataset disables the province endpoints
// with an explicit error, a missing refresher disables manual refresh.
type Server struct {
	Storage   Storage
	Config    *config.DashboardConfig
	Provinces *province.Dataset
	Refresher Refresher
}

func NewServer(storage Storage, config *config.DashboardConfig) *Server {
	return &Server{
		Storage: storage,
		Config:  config,
	}
}

func (srv *Server) Run(ctx context.Context) error {

	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.Config.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware)
	router.Get("/", srv.DashboardHandler)
	router.Get("/ping", srv.PingHandler)
	router.Get("/api/snapshot", srv.SnapshotHandler)
	router.Get("/api/status", srv.StatusHandler)
	router.Get("/api/summary", srv.SummaryHandler)
	router.Get("/api/stats", srv.StatsHandler)
	router.Get("/api/provinces", srv.ProvincesHandler)
	router.Get("/api/provinces/summary", srv.ProvincesSummaryHandler)
	router.Get("/api/report", srv.ReportHandler)
	router.Post("/api/refresh", srv.RefreshHandler)

	httpServer := &http.Server{Addr: srv.Config.Addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// DashboardHandler renders the HTML summary page.
func (srv *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {

	snap, err := srv.Storage.Get(r.Context())
	if err != nil {
		log.Printf("failed to get snapshot from storage: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = fmt.Fprintln(w, "<html><head><title>COVID-19 Data Analysis in Indonesia</title></head><body>")
	if err != nil {
		log.Printf("failed to start response body for dashboard: %v", err)
	}

	fmt.Fprintln(w, "<h1>COVID-19 Data Analysis in Indonesia</h1>")
	fmt.Fprintf(w, "<p>%s</p>", statusMessage(snap))
	fmt.Fprintln(w, "<ul>")
	for i, label := range model.Categories {
		fmt.Fprintf(w, "<li>%s: %d</li>", label, snap.Cases()[i])
	}
	fmt.Fprintln(w, "</ul>")
	fmt.Fprintf(w, "<p>Global Cases: %d | Suspect: %d | Specimens: %d</p>", snap.GlobalTotal, snap.Suspect, snap.Specimens)
	fmt.Fprintf(w, "<p>Recovery Rate: %.2f%% | Death Rate: %.2f%% | Active: %.2f%%</p>",
		snap.RecoveryRate(), snap.DeathRate(), snap.ActiveRate())

	_, err = fmt.Fprintln(w, "</body></html>")
	if err != nil {
		log.Printf("failed to end response body for dashboard: %v", err)
	}
}

// PingHandler reports whether the snapshot store is reachable.
func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.Storage.Ping(r.Context()); err != nil {
		log.Printf("storage ping failed: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func statusMessage(snap model.Snapshot) string {
	if snap.Source == model.SourceLive {
		return "Latest Data from Ministry of Health"
	}
	return "Backup Data (June 21, 2023)"
}

package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/and161185/covid19-dashboard/internal/province"
	"github.com/and161185/covid19-dashboard/internal/report"
	"github.com/and161185/covid19-dashboard/internal/stats"
	"github.com/and161185/covid19-dashboard/model"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type statusResponse struct {
	Source          model.Source `json:"source"`
	Message         string       `json:"message"`
	RetrievedAt     time.Time    `json:"retrieved_at"`
	RefreshInterval int          `json:"refresh_interval_seconds"`
	Provinces       bool         `json:"provinces_available"`
}

type summaryResponse struct {
	GlobalTotal  int      `json:"global_total"`
	RecoveryRate float64  `json:"recovery_rate"`
	DeathRate    float64  `json:"death_rate"`
	ActiveRate   float64  `json:"active_rate"`
	Suspect      int      `json:"suspect"`
	Specimens    int      `json:"specimens"`
	Formulas     []string `json:"formulas"`
}

type provincesResponse struct {
	AsOf      string              `json:"as_of"`
	Provinces []province.Province `json:"provinces"`
}

// SnapshotHandler returns the current snapshot.
func (srv *Server) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := srv.Storage.Get(r.Context())
	if err != nil {
		log.Printf("failed to get snapshot from storage: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

// StatusHandler reports where the current figures came from and when.
func (srv *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := srv.Storage.Get(r.Context())
	if err != nil {
		log.Printf("failed to get snapshot from storage: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, statusResponse{
		Source:          snap.Source,
		Message:         statusMessage(snap),
		RetrievedAt:     snap.RetrievedAt,
		RefreshInterval: srv.Config.RefreshInterval,
		Provinces:       srv.Provinces != nil,
	})
}

// SummaryHandler returns the sidebar figures with their formula lines.
func (srv *Server) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := srv.Storage.Get(r.Context())
	if err != nil {
		log.Printf("failed to get snapshot from storage: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, summaryResponse{
		GlobalTotal:  snap.GlobalTotal,
		RecoveryRate: snap.RecoveryRate(),
		DeathRate:    snap.DeathRate(),
		ActiveRate:   snap.ActiveRate(),
		Suspect:      snap.Suspect,
		Specimens:    snap.Specimens,
		Formulas:     formulas(snap),
	})
}

// StatsHandler returns the full statistics payload for the widgets.
func (srv *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := srv.Storage.Get(r.Context())
	if err != nil {
		log.Printf("failed to get snapshot from storage: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats.Compute(snap))
}

// ProvincesHandler returns the province table. A missing dataset file is an
// explicit 404, never silently substituted.
func (srv *Server) ProvincesHandler(w http.ResponseWriter, r *http.Request) {
	if srv.Provinces == nil {
		http.Error(w, province.ErrDatasetNotFound.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, provincesResponse{AsOf: province.AsOf, Provinces: srv.Provinces.Provinces()})
}

// ProvincesSummaryHandler returns the per-column description of the table.
func (srv *Server) ProvincesSummaryHandler(w http.ResponseWriter, r *http.Request) {
	if srv.Provinces == nil {
		http.Error(w, province.ErrDatasetNotFound.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, srv.Provinces.Summarize())
}

// ReportHandler streams the xlsx workbook built from the current data.
func (srv *Server) ReportHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := srv.Storage.Get(r.Context())
	if err != nil {
		log.Printf("failed to get snapshot from storage: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	book, err := report.Build(snap, stats.Compute(snap), srv.Provinces)
	if err != nil {
		log.Printf("failed to build report: %v", err)
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}
	defer book.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="covid19-dashboard.xlsx"`)
	if err := book.Write(w); err != nil {
		log.Printf("failed to write report: %v", err)
	}
}

// RefreshHandler triggers one acquisition and returns the new snapshot.
func (srv *Server) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	if srv.Refresher == nil {
		http.Error(w, "refresher not configured", http.StatusServiceUnavailable)
		return
	}

	snap, err := srv.Refresher.RefreshNow(r.Context())
	if err != nil {
		log.Printf("manual refresh failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func formulas(snap model.Snapshot) []string {
	return []string{
		fmt.Sprintf("Recovery Rate = (Recovered / Total Cases) * 100%% = %d / %d * 100%% = %.2f%%",
			snap.Recovered, snap.Confirmed, snap.RecoveryRate()),
		fmt.Sprintf("Death Rate = (Deaths / Total Cases) * 100%% = %d / %d * 100%% = %.2f%%",
			snap.Deaths, snap.Confirmed, snap.DeathRate()),
		fmt.Sprintf("Active Rate = (Active Cases / Total Cases) * 100%% = %d / %d * 100%% = %.2f%%",
			snap.Active, snap.Confirmed, snap.ActiveRate()),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response JSON: %v", err)
	}
}

// Package report builds the downloadable xlsx workbook of the dashboard.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/and161185/covid19-dashboard/internal/province"
	"github.com/and161185/covid19-dashboard/internal/stats"
	"github.com/and161185/covid19-dashboard/model"
)

const (
	summarySheet    = "Summary"
	statisticsSheet = "Statistics"
	provincesSheet  = "Provinces"
)

// Build assembles the workbook: snapshot summary, statistics figures and,
// when the dataset is present, the province table. ds may be nil.
func Build(snap model.Snapshot, rep stats.Report, ds *province.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSummary(f, snap); err != nil {
		return nil, err
	}
	if err := writeStatistics(f, rep); err != nil {
		return nil, err
	}
	if ds != nil {
		if err := writeProvinces(f, ds); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSummary(f *excelize.File, snap model.Snapshot) error {
	retrieved := "never"
	if !snap.RetrievedAt.IsZero() {
		retrieved = snap.RetrievedAt.Format(time.RFC3339)
	}

	rows := [][]any{
		{"Field", "Value"},
		{"Confirmed", snap.Confirmed},
		{"Recovered", snap.Recovered},
		{"Deaths", snap.Deaths},
		{"Active Cases", snap.Active},
		{"Global Cases", snap.GlobalTotal},
		{"Suspect", snap.Suspect},
		{"Specimens", snap.Specimens},
		{"Recovery Rate (%)", snap.RecoveryRate()},
		{"Death Rate (%)", snap.DeathRate()},
		{"Active Rate (%)", snap.ActiveRate()},
		{"Source", string(snap.Source)},
		{"Retrieved At", retrieved},
	}
	return writeRows(f, summarySheet, rows)
}

func writeStatistics(f *excelize.File, rep stats.Report) error {
	if _, err := f.NewSheet(statisticsSheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", statisticsSheet, err)
	}

	rows := [][]any{
		{"Category", "Amount", "Relative Frequency", "Cumulative Frequency"},
	}
	for _, fr := range rep.FrequencyTable {
		rows = append(rows, []any{fr.Category, fr.Amount, fr.Relative, fr.Cumulative})
	}
	rows = append(rows,
		[]any{},
		[]any{"Mean", rep.Mean},
		[]any{"Median", rep.Median},
		[]any{"Mode", fmt.Sprintf("%v", rep.Mode)},
		[]any{"Standard Deviation", rep.StdDev},
		[]any{"Variance", rep.Variance},
		[]any{"Q1", rep.Quartiles[0]},
		[]any{"Q3", rep.Quartiles[2]},
		[]any{"IQR", rep.IQR},
		[]any{"90th Percentile", rep.P90},
		[]any{"Distribution Shape", rep.Shape},
	)
	return writeRows(f, statisticsSheet, rows)
}

func writeProvinces(f *excelize.File, ds *province.Dataset) error {
	if _, err := f.NewSheet(provincesSheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", provincesSheet, err)
	}

	rows := [][]any{
		{"Province", "Confirmed", "Recovered", "Deaths", "Recovery Rate (%)", "Death Rate (%)"},
	}
	for _, p := range ds.Provinces() {
		rows = append(rows, []any{p.Name, p.Confirmed, p.Recovered, p.Deaths, p.RecoveryRate, p.DeathRate})
	}
	return writeRows(f, provincesSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

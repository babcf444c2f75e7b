// Package province serves the per-province case table shipped with the
// dashboard.
package province

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/and161185/covid19-dashboard/internal/stats"
)

// ErrDatasetNotFound reports a missing dataset file. Handlers surface it to
// the user instead of masking it with backup figures.
var ErrDatasetNotFound = errors.New("province dataset not found")

// AsOf is the publication date of the shipped dataset.
const AsOf = "2023-06-21"

// Province is one table row with its rates precomputed at load time.
type Province struct {
	Name         string  `json:"province"`
	Confirmed    int     `json:"confirmed"`
	Recovered    int     `json:"recovered"`
	Deaths       int     `json:"deaths"`
	RecoveryRate float64 `json:"recovery_rate"`
	DeathRate    float64 `json:"death_rate"`
}

// Dataset is an ordered province table, read-only after load.
type Dataset struct {
	provinces []Province
}

// Load reads the dataset from path. A missing file is reported as
// ErrDatasetNotFound.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads a CSV province table with the columns province, confirmed,
// recovered and deaths, in any column order.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := func(name string) int {
		for i, h := range hdr {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	iName := idx("province")
	iConfirmed := idx("confirmed")
	iRecovered := idx("recovered")
	iDeaths := idx("deaths")
	if iName < 0 || iConfirmed < 0 || iRecovered < 0 || iDeaths < 0 {
		return nil, errors.New("required columns missing (need province, confirmed, recovered, deaths)")
	}

	provinces := make([]Province, 0, 40)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		p := Province{Name: strings.TrimSpace(rec[iName])}
		if p.Confirmed, err = strconv.Atoi(rec[iConfirmed]); err != nil {
			return nil, fmt.Errorf("row %q: confirmed: %w", p.Name, err)
		}
		if p.Recovered, err = strconv.Atoi(rec[iRecovered]); err != nil {
			return nil, fmt.Errorf("row %q: recovered: %w", p.Name, err)
		}
		if p.Deaths, err = strconv.Atoi(rec[iDeaths]); err != nil {
			return nil, fmt.Errorf("row %q: deaths: %w", p.Name, err)
		}
		if p.Confirmed > 0 {
			p.RecoveryRate = float64(p.Recovered) / float64(p.Confirmed) * 100
			p.DeathRate = float64(p.Deaths) / float64(p.Confirmed) * 100
		}
		provinces = append(provinces, p)
	}
	if len(provinces) == 0 {
		return nil, errors.New("dataset has no rows")
	}

	return &Dataset{provinces: provinces}, nil
}

// Provinces returns the table rows in file order.
func (d *Dataset) Provinces() []Province {
	out := make([]Province, len(d.provinces))
	copy(out, d.provinces)
	return out
}

// Summary describes every numeric column of the table.
type Summary struct {
	Confirmed    stats.Description `json:"confirmed"`
	Recovered    stats.Description `json:"recovered"`
	Deaths       stats.Description `json:"deaths"`
	RecoveryRate stats.Description `json:"recovery_rate"`
	DeathRate    stats.Description `json:"death_rate"`
}

// Summarize computes the column summaries of the table.
func (d *Dataset) Summarize() Summary {
	n := len(d.provinces)
	confirmed := make([]float64, 0, n)
	recovered := make([]float64, 0, n)
	deaths := make([]float64, 0, n)
	recoveryRate := make([]float64, 0, n)
	deathRate := make([]float64, 0, n)

	for _, p := range d.provinces {
		confirmed = append(confirmed, float64(p.Confirmed))
		recovered = append(recovered, float64(p.Recovered))
		deaths = append(deaths, float64(p.Deaths))
		recoveryRate = append(recoveryRate, p.RecoveryRate)
		deathRate = append(deathRate, p.DeathRate)
	}

	return Summary{
		Confirmed:    stats.Describe(confirmed),
		Recovered:    stats.Describe(recovered),
		Deaths:       stats.Describe(deaths),
		RecoveryRate: stats.Describe(recoveryRate),
		DeathRate:    stats.Describe(deathRate),
	}
}

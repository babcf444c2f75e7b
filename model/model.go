// Package model contains core data types for the project.
package model

import "time"

// Source tells where a snapshot came from: a live scrape or the built-in
// backup constants.
type Source string

const (
	SourceLive     Source = "live"     // SourceLive marks a snapshot scraped from the source page.
	SourceFallback Source = "fallback" // SourceFallback marks the fixed backup snapshot.
)

// Snapshot is the consolidated set of case counts for one refresh cycle.
// It is built once per cycle, replaced wholesale on the next one and never
// mutated field-by-field in between.
type Snapshot struct {
	Confirmed   int       `json:"confirmed"`    // Total confirmed cases.
	Recovered   int       `json:"recovered"`    // Recovered cases.
	Deaths      int       `json:"deaths"`       // Deaths.
	Active      int       `json:"active"`       // Active cases; derived when the page omits a figure.
	GlobalTotal int       `json:"global_total"` // Worldwide figure shown in the sidebar.
	Suspect     int       `json:"suspect"`      // Suspected cases.
	Specimens   int       `json:"specimens"`    // Examined specimens.
	Source      Source    `json:"source"`       // live or fallback.
	RetrievedAt time.Time `json:"retrieved_at"` // Zero until a live scrape succeeds.
}

// Categories labels the four case figures in the order every widget reads them.
var Categories = []string{"Confirmed", "Recovered", "Deaths", "Active Cases"}

// Cases returns the four case figures in category order.
func (s Snapshot) Cases() []int {
	return []int{s.Confirmed, s.Recovered, s.Deaths, s.Active}
}

// DerivedActive computes active cases from the other three figures.
func (s Snapshot) DerivedActive() int {
	return s.Confirmed - (s.Recovered + s.Deaths)
}

// RecoveryRate returns recovered cases as a percentage of confirmed ones.
// All rates are 0 when there are no confirmed cases.
func (s Snapshot) RecoveryRate() float64 {
	if s.Confirmed <= 0 {
		return 0
	}
	return float64(s.Recovered) / float64(s.Confirmed) * 100
}

// DeathRate returns deaths as a percentage of confirmed cases.
func (s Snapshot) DeathRate() float64 {
	if s.Confirmed <= 0 {
		return 0
	}
	return float64(s.Deaths) / float64(s.Confirmed) * 100
}

// ActiveRate returns active cases as a percentage of confirmed ones.
func (s Snapshot) ActiveRate() float64 {
	if s.Confirmed <= 0 {
		return 0
	}
	return float64(s.Active) / float64(s.Confirmed) * 100
}

// Backup figures published on June 21, 2023.
const (
	fallbackConfirmed = 6811444
	fallbackRecovered = 6640216
	fallbackDeaths    = 161853
	fallbackGlobal    = 676681574
	fallbackSuspect   = 1080
	fallbackSpecimens = 13678
)

// FallbackSnapshot returns the fixed backup snapshot used whenever a live
// scrape fails. RetrievedAt stays zero: the backup never counts as a
// successful fetch.
func FallbackSnapshot() Snapshot {
	s := Snapshot{
		Confirmed:   fallbackConfirmed,
		Recovered:   fallbackRecovered,
		Deaths:      fallbackDeaths,
		GlobalTotal: fallbackGlobal,
		Suspect:     fallbackSuspect,
		Specimens:   fallbackSpecimens,
		Source:      SourceFallback,
	}
	s.Active = s.DerivedActive()
	return s
}

package scraper

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/and161185/covid19-dashboard/model"
)

// The page lists its counters in a fixed order; each slot below is the index
// of one counter among the matched nodes.
const (
	slotConfirmed = iota
	slotRecovered
	slotDeaths
	slotActive
	slotSuspect
	slotSpecimens
)

// minFigures is the smallest node count a page must yield to be usable.
// Active cases can be derived from the first three figures when the page
// drops the fourth one.
const minFigures = 3

// parseNumbers extracts every node matched by selector as an integer, in
// document order. Dots and commas are thousands separators. A single
// malformed node fails the whole parse.
func parseNumbers(body []byte, selector string) ([]int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var parseErr error
	numbers := make([]int, 0, 8)
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		cleaned := strings.ReplaceAll(text, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		n, err := strconv.Atoi(cleaned)
		if err != nil {
			parseErr = fmt.Errorf("%w: %q", ErrBadFigure, text)
			return false
		}
		numbers = append(numbers, n)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return numbers, nil
}

// buildSnapshot assembles a live snapshot from at least minFigures numbers.
// Missing optional slots fall back to the derived active count and the backup
// suspect and specimen figures.
func buildSnapshot(numbers []int, now time.Time) model.Snapshot {
	fb := model.FallbackSnapshot()

	snap := model.Snapshot{
		Confirmed: numbers[slotConfirmed],
		Recovered: numbers[slotRecovered],
		Deaths:    numbers[slotDeaths],
		// The worldwide figure reuses the first slot, which holds the
		// national confirmed count. TODO: read the worldwide total from its
		// own element on the page.
		GlobalTotal: numbers[slotConfirmed],
		Suspect:     fb.Suspect,
		Specimens:   fb.Specimens,
		Source:      model.SourceLive,
		RetrievedAt: now,
	}

	if len(numbers) > slotActive {
		snap.Active = numbers[slotActive]
	} else {
		snap.Active = snap.DerivedActive()
	}
	if len(numbers) > slotSuspect {
		snap.Suspect = numbers[slotSuspect]
	}
	if len(numbers) > slotSpecimens {
		snap.Specimens = numbers[slotSpecimens]
	}

	return snap
}

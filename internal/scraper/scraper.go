// Package scraper retrieves the national case figures from the ministry of
// health page and turns them into a snapshot.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/and161185/covid19-dashboard/internal/config"
	"github.com/and161185/covid19-dashboard/model"
)

var (
	ErrUnreachable = errors.New("source page unreachable")
	ErrBadStatus   = errors.New("unexpected response status")
	ErrBadFigure   = errors.New("malformed case figure")
	ErrIncomplete  = errors.New("incomplete case figures")
)

// Scraper fetches one fixed page and extracts the case figures from it.
type Scraper struct {
	client   *resty.Client
	url      string
	selector string
	logger   *zap.SugaredLogger
}

// New creates a scraper for the page named by the configuration.
func New(cfg *config.FetcherConfig, logger *zap.SugaredLogger) *Scraper {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)

	return &Scraper{
		client:   client,
		url:      cfg.URL,
		selector: cfg.Selector,
		logger:   logger,
	}
}

// Fetch retrieves the page and parses a live snapshot out of it. The error
// wraps ErrUnreachable, ErrBadStatus, ErrBadFigure or ErrIncomplete depending
// on what went wrong; callers that only need a usable snapshot should use
// Acquire instead.
func (s *Scraper) Fetch(ctx context.Context) (model.Snapshot, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return model.Snapshot{}, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode())
	}

	numbers, err := parseNumbers(resp.Body(), s.selector)
	if err != nil {
		return model.Snapshot{}, err
	}
	if len(numbers) < minFigures {
		return model.Snapshot{}, fmt.Errorf("%w: found %d of %d", ErrIncomplete, len(numbers), minFigures)
	}

	return buildSnapshot(numbers, time.Now()), nil
}

// Acquire returns the live snapshot, or the backup one when the fetch fails
// for any reason. It never returns an error: a failed cycle degrades to the
// backup figures wholesale.
func (s *Scraper) Acquire(ctx context.Context) model.Snapshot {
	snap, err := s.Fetch(ctx)
	if err != nil {
		s.logger.Warnf("live fetch failed, using backup figures: %v", err)
		return model.FallbackSnapshot()
	}
	return snap
}

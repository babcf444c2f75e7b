package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/and161185/covid19-dashboard/internal/config"
	"github.com/and161185/covid19-dashboard/model"
)

func casePage(figures ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="covid-case">`)
	for _, f := range figures {
		fmt.Fprintf(&b, "<strong>%s</strong>", f)
	}
	b.WriteString(`</div><div class="other"><strong>999</strong></div></body></html>`)
	return b.String()
}

func newTestScraper(t *testing.T, url string) *Scraper {
	t.Helper()
	cfg := &config.FetcherConfig{
		URL:      url,
		Selector: ".covid-case strong",
		Timeout:  2 * time.Second,
	}
	return New(cfg, zap.NewNop().Sugar())
}

func servePage(t *testing.T, page string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchFullPage(t *testing.T) {
	srv := servePage(t, casePage("6.811.444", "6.640.216", "161.853", "9.375", "1.080", "13.678"))
	s := newTestScraper(t, srv.URL)

	snap, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, 6811444, snap.Confirmed)
	require.Equal(t, 6640216, snap.Recovered)
	require.Equal(t, 161853, snap.Deaths)
	require.Equal(t, 9375, snap.Active)
	require.Equal(t, 1080, snap.Suspect)
	require.Equal(t, 13678, snap.Specimens)
	require.Equal(t, snap.Confirmed, snap.GlobalTotal)
	require.Equal(t, model.SourceLive, snap.Source)
	require.False(t, snap.RetrievedAt.IsZero())
}

func TestFetchThreeFiguresDerivesActive(t *testing.T) {
	srv := servePage(t, casePage("100", "60", "10"))
	s := newTestScraper(t, srv.URL)

	snap, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, 30, snap.Active)
	require.Equal(t, 1080, snap.Suspect)
	require.Equal(t, 13678, snap.Specimens)
	require.Equal(t, model.SourceLive, snap.Source)
}

func TestFetchFourFiguresKeepsPublishedActive(t *testing.T) {
	srv := servePage(t, casePage("100", "60", "10", "25"))
	s := newTestScraper(t, srv.URL)

	snap, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, 25, snap.Active)
}

func TestFetchTooFewFigures(t *testing.T) {
	srv := servePage(t, casePage("100", "60"))
	s := newTestScraper(t, srv.URL)

	_, err := s.Fetch(context.Background())
	require.ErrorIs(t, err, ErrIncomplete)
}

func TestFetchMalformedFigure(t *testing.T) {
	srv := servePage(t, casePage("100", "n/a", "10"))
	s := newTestScraper(t, srv.URL)

	_, err := s.Fetch(context.Background())
	require.ErrorIs(t, err, ErrBadFigure)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	s := newTestScraper(t, srv.URL)

	_, err := s.Fetch(context.Background())
	require.ErrorIs(t, err, ErrBadStatus)
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	s := newTestScraper(t, srv.URL)

	_, err := s.Fetch(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.FetcherConfig{
		URL:      srv.URL,
		Selector: ".covid-case strong",
		Timeout:  50 * time.Millisecond,
	}
	s := New(cfg, zap.NewNop().Sugar())

	_, err := s.Fetch(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestFetchCanceledContext(t *testing.T) {
	srv := servePage(t, casePage("100", "60", "10"))
	s := newTestScraper(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Fetch(ctx)
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestAcquireLive(t *testing.T) {
	srv := servePage(t, casePage("100", "60", "10"))
	s := newTestScraper(t, srv.URL)

	snap := s.Acquire(context.Background())

	require.Equal(t, model.SourceLive, snap.Source)
	require.Equal(t, 100, snap.Confirmed)
}

func TestAcquireFallsBack(t *testing.T) {
	srv := servePage(t, casePage("100", "60"))
	s := newTestScraper(t, srv.URL)

	snap := s.Acquire(context.Background())

	require.Equal(t, model.FallbackSnapshot(), snap)
}

func TestAcquireUnreachableIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	s := newTestScraper(t, srv.URL)

	first := s.Acquire(context.Background())
	second := s.Acquire(context.Background())

	require.Equal(t, model.SourceFallback, first.Source)
	require.Equal(t, first, second)
}

func TestFetchIgnoresOtherSelectors(t *testing.T) {
	srv := servePage(t, casePage("100", "60", "10"))
	s := newTestScraper(t, srv.URL)

	snap, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, 100, snap.Confirmed)
	require.Equal(t, 60, snap.Recovered)
	require.Equal(t, 10, snap.Deaths)
}

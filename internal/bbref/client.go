// Package bbref fetches and parses the basketball-reference per-game player
// table for a season.
//
// The site serves plain HTML with one relevant table per page. Requests are
// rate limited via a token bucket so repeated cache misses stay polite.
package bbref

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/courtside/statline/internal/season"
)

// DefaultBaseURL is the production stats host.
const DefaultBaseURL = "https://www.basketball-reference.com"

// Client is the HTTP scraper for season pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	schema     *season.Schema
	minYear    int
	maxYear    int
	logger     *slog.Logger
}

// NewClient creates a scraping client with rate limiting and an explicit
// request timeout. minYear/maxYear bound the supported season range;
// out-of-range years are rejected before any network call.
func NewClient(baseURL, userAgent string, requestsPerMinute int, timeout time.Duration, minYear, maxYear int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		schema:     season.DefaultSchema(),
		minYear:    minYear,
		maxYear:    maxYear,
		logger:     logger,
	}
}

// SeasonURL returns the per-game stats page for a year.
func (c *Client) SeasonURL(year int) string {
	return fmt.Sprintf("%s/leagues/NBA_%d_per_game.html", c.baseURL, year)
}

// YearSupported reports whether a year is inside the configured range.
func (c *Client) YearSupported(year int) bool {
	return year >= c.minYear && year <= c.maxYear
}

// FetchSeason retrieves and parses one season's player table. The result is
// deterministic given identical source content. Failures are returned as
// *FetchError classified by errors.Is against ErrYear, ErrNetwork,
// ErrTimeout, or ErrParse.
func (c *Client) FetchSeason(ctx context.Context, year int) (*season.Table, error) {
	if !c.YearSupported(year) {
		return nil, &FetchError{Year: year, Kind: ErrYear,
			Err: fmt.Errorf("supported range is %d-%d", c.minYear, c.maxYear)}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{Year: year, Kind: classifyTransport(err), Err: err}
	}

	u := c.SeasonURL(year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{Year: year, Kind: ErrNetwork, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Year: year, Kind: classifyTransport(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Year: year, Kind: ErrNetwork,
			Err: fmt.Errorf("GET %s returned %d", u, resp.StatusCode)}
	}

	table, err := ParseSeasonTable(resp.Body, year, c.schema)
	if err != nil {
		return nil, &FetchError{Year: year, Kind: ErrParse, Err: err}
	}

	c.logger.Info("season fetched",
		"year", year,
		"rows", table.Len(),
		"columns", len(table.Columns),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return table, nil
}

// classifyTransport separates timeouts from other transport failures so the
// caller can surface them distinctly.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return ErrNetwork
}

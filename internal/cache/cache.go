// Package cache provides the process-wide season table store with ETag
// support. Tables are memoized by year: a hit inside the validity window
// returns the parsed table without a network call, and a failed refresh
// never clears or corrupts the entry it was trying to replace.
package cache

import (
	"context"
	"crypto/md5"
	"fmt"
	"sync"
	"time"

	"github.com/courtside/statline/internal/season"
)

// Entry validity windows. The current season changes nightly; finished
// seasons are effectively immutable.
const (
	TTLCurrentSeason = 1 * time.Hour
	TTLHistorical    = 24 * time.Hour
)

// Loader fetches a season table on a cache miss.
type Loader func(ctx context.Context, year int) (*season.Table, error)

type entry struct {
	table     *season.Table
	fetchedAt time.Time
	expiresAt time.Time
}

// Store is a thread-safe year-keyed season table cache. At most one fetch
// is in flight per year; concurrent readers of a completed entry share the
// same immutable table.
type Store struct {
	mu            sync.RWMutex
	entries       map[int]*entry
	flights       map[int]*sync.Mutex
	currentSeason int
	enabled       bool
}

// New creates a store. currentSeason picks the short TTL for the season
// still in progress. Pass enabled=false for a pass-through store.
func New(currentSeason int, enabled bool) *Store {
	return &Store{
		entries:       make(map[int]*entry),
		flights:       make(map[int]*sync.Mutex),
		currentSeason: currentSeason,
		enabled:       enabled,
	}
}

// GetOrFetch returns the cached table for a year, loading it through load
// on a miss or after expiry. The second return reports a cache hit. When a
// refresh fails and a previous table exists, that table is left in place
// and returned alongside the error so callers can serve stale data.
func (s *Store) GetOrFetch(ctx context.Context, year int, load Loader) (*season.Table, bool, error) {
	if !s.enabled {
		t, err := load(ctx, year)
		return t, false, err
	}

	if t, ok := s.fresh(year); ok {
		return t, true, nil
	}

	flight := s.flight(year)
	flight.Lock()
	defer flight.Unlock()

	// Another request may have completed the fetch while we waited.
	if t, ok := s.fresh(year); ok {
		return t, true, nil
	}

	t, err := load(ctx, year)
	if err != nil {
		// Keep whatever was cached before; stale beats gone.
		s.mu.RLock()
		prev := s.entries[year]
		s.mu.RUnlock()
		if prev != nil {
			return prev.table, true, err
		}
		return nil, false, err
	}

	now := time.Now()
	s.mu.Lock()
	s.entries[year] = &entry{table: t, fetchedAt: now, expiresAt: now.Add(s.ttl(year))}
	s.mu.Unlock()
	return t, false, nil
}

// Peek returns the cached table for a year regardless of expiry.
func (s *Store) Peek(year int) (*season.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[year]
	if !ok {
		return nil, false
	}
	return e.table, true
}

// Invalidate removes a year's entry, forcing the next request to refetch.
func (s *Store) Invalidate(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, year)
}

// Expire marks a year's entry as past its validity window without removing
// it. The next request revalidates, and on a failed refresh the kept entry
// is still available as the stale fallback.
func (s *Store) Expire(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[year]; ok {
		e.expiresAt = time.Time{}
	}
}

// Stats returns cache statistics for the health endpoint.
func (s *Store) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fresh := 0
	now := time.Now()
	years := make([]int, 0, len(s.entries))
	for year, e := range s.entries {
		years = append(years, year)
		if now.Before(e.expiresAt) {
			fresh++
		}
	}
	return map[string]interface{}{
		"enabled":       s.enabled,
		"cached_years":  years,
		"fresh_entries": fresh,
		"stale_entries": len(s.entries) - fresh,
	}
}

func (s *Store) fresh(year int) (*season.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[year]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.table, true
}

func (s *Store) flight(year int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.flights[year]
	if !ok {
		m = &sync.Mutex{}
		s.flights[year] = m
	}
	return m
}

func (s *Store) ttl(year int) time.Duration {
	if year == s.currentSeason {
		return TTLCurrentSeason
	}
	return TTLHistorical
}

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if If-None-Match header matches the current ETag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}
	return ifNoneMatch == etag
}

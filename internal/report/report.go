// Package report computes the dashboard summary figures.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Summary is the dashboard headline block.
type Summary struct {
	Contracts           int   `json:"contracts"`
	ActiveContracts     int   `json:"active_contracts"`
	AvailableVehicles   int   `json:"available_vehicles"`
	TotalSalesCents     int64 `json:"total_sales_cents"`
	PaidCents           int64 `json:"paid_cents"`
	OutstandingCents    int64 `json:"outstanding_cents"`
	OverdueInstallments int   `json:"overdue_installments"`
}

type Repository interface {
	// Summary aggregates the dashboard figures as of the given day.
	// Overdue counts follow the same derivation as the schedule package:
	// not paid, not cancelled, due before today.
	Summary(ctx context.Context, today time.Time) (*Summary, error)
}

// Cache is the report cache port. A miss is (_, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

const summaryKeyPrefix = "report:summary"

// summaryKey scopes the cache entry to the day the summary was computed
// for, so a figure cached just before midnight is not served after the
// overdue cutoff has moved.
func summaryKey(today time.Time) string {
	return summaryKeyPrefix + ":" + today.Format(time.DateOnly)
}

type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
}

func NewService(repo Repository, cache Cache, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl}
}

// Summary returns the dashboard figures, cache-aside with a short TTL.
// Cache failures degrade to a direct computation.
func (s *Service) Summary(ctx context.Context, today time.Time) (*Summary, error) {
	key := summaryKey(today)

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("report cache read failed", "error", err)
		} else if found {
			var sum Summary
			if err := json.Unmarshal([]byte(cached), &sum); err == nil {
				return &sum, nil
			}
		}
	}

	sum, err := s.repo.Summary(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("computing summary: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(sum); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
				slog.Warn("report cache write failed", "error", err)
			}
		}
	}

	return sum, nil
}

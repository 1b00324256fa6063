package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinklegion/stand/internal/report"
)

type stubRepo struct {
	summary *report.Summary
	err     error
	calls   int
}

func (s *stubRepo) Summary(ctx context.Context, today time.Time) (*report.Summary, error) {
	s.calls++
	return s.summary, s.err
}

type stubCache struct {
	data   map[string]string
	getErr error
	setErr error
	setTTL time.Duration
}

func newStubCache() *stubCache {
	return &stubCache{data: map[string]string{}}
}

func (c *stubCache) Get(ctx context.Context, key string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}

	val, ok := c.data[key]

	return val, ok, nil
}

func (c *stubCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}

	c.data[key] = value
	c.setTTL = ttl

	return nil
}

var testSummary = &report.Summary{
	Contracts:           10,
	ActiveContracts:     7,
	AvailableVehicles:   12,
	TotalSalesCents:     25000000,
	PaidCents:           8000000,
	OutstandingCents:    9000000,
	OverdueInstallments: 3,
}

func TestService_Summary_ComputesAndCaches(t *testing.T) {
	today := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	repo := &stubRepo{summary: testSummary}
	cache := newStubCache()

	svc := report.NewService(repo, cache, time.Minute)

	got, err := svc.Summary(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, time.Minute, cache.setTTL)

	// Second read on the same day is served from cache.
	got, err = svc.Summary(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
	assert.Equal(t, 1, repo.calls)
}

func TestService_Summary_CacheHit(t *testing.T) {
	payload, err := json.Marshal(testSummary)
	require.NoError(t, err)

	today := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	repo := &stubRepo{err: errors.New("should not be called")}
	cache := newStubCache()
	cache.data["report:summary:2024-03-15"] = string(payload)

	svc := report.NewService(repo, cache, time.Minute)

	got, err := svc.Summary(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
	assert.Zero(t, repo.calls)
}

func TestService_Summary_CacheKeyRollsWithDate(t *testing.T) {
	payload, err := json.Marshal(&report.Summary{OverdueInstallments: 1})
	require.NoError(t, err)

	// An entry cached just before midnight must not answer the next day,
	// since the overdue cutoff has moved.
	repo := &stubRepo{summary: testSummary}
	cache := newStubCache()
	cache.data["report:summary:2024-03-15"] = string(payload)

	svc := report.NewService(repo, cache, time.Minute)

	nextDay := time.Date(2024, time.March, 16, 0, 5, 0, 0, time.UTC)

	got, err := svc.Summary(context.Background(), nextDay)
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
	assert.Equal(t, 1, repo.calls)
	assert.Contains(t, cache.data, "report:summary:2024-03-16")
}

func TestService_Summary_CacheFailureDegrades(t *testing.T) {
	repo := &stubRepo{summary: testSummary}
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")

	svc := report.NewService(repo, cache, time.Minute)

	got, err := svc.Summary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
	assert.Equal(t, 1, repo.calls)
}

func TestService_Summary_CorruptCacheEntryRecomputes(t *testing.T) {
	today := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	repo := &stubRepo{summary: testSummary}
	cache := newStubCache()
	cache.data["report:summary:2024-03-15"] = "{not json"

	svc := report.NewService(repo, cache, time.Minute)

	got, err := svc.Summary(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
	assert.Equal(t, 1, repo.calls)
}

func TestService_Summary_RepoError(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}

	svc := report.NewService(repo, newStubCache(), time.Minute)

	_, err := svc.Summary(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "computing summary")
}

func TestService_Summary_NilCache(t *testing.T) {
	repo := &stubRepo{summary: testSummary}

	svc := report.NewService(repo, nil, time.Minute)

	got, err := svc.Summary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
}

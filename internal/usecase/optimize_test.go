package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"HedgeFolio/internal/domain/models"
	"HedgeFolio/internal/optimizer"
	"HedgeFolio/pkg/cache"
	xhttp "HedgeFolio/pkg/http"
	xlogger "HedgeFolio/pkg/logger"
)

type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{data: make(map[string]string)} }

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("fake cache only stores strings")
	}
	f.data[key] = s
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	s, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	p, ok := dest.(*string)
	if !ok {
		return errors.New("fake cache only reads into *string")
	}
	*p = s
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeCache) Exists(_ context.Context, keys ...string) (bool, error) {
	for _, k := range keys {
		if _, ok := f.data[k]; !ok {
			return false, nil
		}
	}
	return true, nil
}

type fakePublisher struct {
	published []string
	err       error
}

func (p *fakePublisher) PublishPortfolio(_ context.Context, account string, _ *models.PortfolioResponse) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, account)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeMetrics struct {
	optimizations map[string]int
	errors        map[string]int
	instructions  int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{optimizations: make(map[string]int), errors: make(map[string]int)}
}

func (m *fakeMetrics) RecordOptimization(outcome string) { m.optimizations[outcome]++ }
func (m *fakeMetrics) RecordHedgeRatio(string, float64)  {}
func (m *fakeMetrics) RecordRiskScore(string, float64)   {}
func (m *fakeMetrics) RecordSharpe(string, float64)      {}
func (m *fakeMetrics) RecordError(kind string)           { m.errors[kind]++ }
func (m *fakeMetrics) RecordLatency(string, float64)     {}
func (m *fakeMetrics) RecordInstructionsPublished(_ string, count int) {
	m.instructions += count
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestAllocator(t *testing.T, c cache.Service, pub *fakePublisher, m *fakeMetrics) *Allocator {
	t.Helper()
	engine := optimizer.New(optimizer.DefaultConfig())
	return NewAllocator(engine, c, pub, m, testLogger(t), time.Hour)
}

func buyReq(account string) *models.OptimizeRequest {
	return &models.OptimizeRequest{
		Account: account,
		Signals: map[string][]models.SignalRequest{
			"BTC": {
				{Strategy: "momentum", Action: "BUY", Confidence: 0.8, Strength: 0.7, ExpectedReturn: 0.05, RiskLevel: 0.03},
			},
		},
		Holdings:      map[string]float64{},
		TotalValueUSD: 10000,
	}
}

func TestOptimizeCachesAndPublishes(t *testing.T) {
	c := newFakeCache()
	pub := &fakePublisher{}
	m := newFakeMetrics()
	a := newTestAllocator(t, c, pub, m)

	resp, err := a.Optimize(context.Background(), buyReq("acct-1"))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if resp.Account != "acct-1" {
		t.Errorf("account = %q, want acct-1", resp.Account)
	}
	if len(resp.Allocations) == 0 {
		t.Fatal("expected allocations")
	}

	if len(pub.published) != 1 || pub.published[0] != "acct-1" {
		t.Errorf("published = %v, want [acct-1]", pub.published)
	}
	if m.optimizations["ok"] != 1 {
		t.Errorf("ok optimizations = %d, want 1", m.optimizations["ok"])
	}
	if m.instructions != len(resp.Allocations) {
		t.Errorf("instructions = %d, want %d", m.instructions, len(resp.Allocations))
	}

	raw, ok := c.data["portfolio:latest:acct-1"]
	if !ok {
		t.Fatal("expected cached portfolio")
	}
	var cached models.PortfolioResponse
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		t.Fatalf("cached payload: %v", err)
	}
	if cached.Account != "acct-1" {
		t.Errorf("cached account = %q, want acct-1", cached.Account)
	}
}

func TestOptimizeRejectsEmptySignals(t *testing.T) {
	m := newFakeMetrics()
	a := newTestAllocator(t, newFakeCache(), &fakePublisher{}, m)

	req := &models.OptimizeRequest{
		Account:       "acct-1",
		Signals:       map[string][]models.SignalRequest{"BTC": {}},
		TotalValueUSD: 10000,
	}
	_, err := a.Optimize(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for empty signal lists")
	}
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 400 {
		t.Errorf("err = %v, want 400 AppError", err)
	}
	if m.optimizations["rejected"] != 1 {
		t.Errorf("rejected = %d, want 1", m.optimizations["rejected"])
	}
}

func TestOptimizePublishFailureDoesNotFailCall(t *testing.T) {
	m := newFakeMetrics()
	pub := &fakePublisher{err: errors.New("broker down")}
	a := newTestAllocator(t, newFakeCache(), pub, m)

	resp, err := a.Optimize(context.Background(), buyReq("acct-1"))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if resp == nil {
		t.Fatal("expected response despite publish failure")
	}
	if m.errors["publish"] != 1 {
		t.Errorf("publish errors = %d, want 1", m.errors["publish"])
	}
}

func TestLatestRoundTrip(t *testing.T) {
	c := newFakeCache()
	a := newTestAllocator(t, c, &fakePublisher{}, newFakeMetrics())

	want, err := a.Optimize(context.Background(), buyReq("acct-2"))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	got, err := a.Latest(context.Background(), "acct-2")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got.Account != want.Account {
		t.Errorf("account = %q, want %q", got.Account, want.Account)
	}
	if len(got.Allocations) != len(want.Allocations) {
		t.Errorf("allocations = %d, want %d", len(got.Allocations), len(want.Allocations))
	}
}

func TestLatestMissReturnsNotFound(t *testing.T) {
	a := newTestAllocator(t, newFakeCache(), &fakePublisher{}, newFakeMetrics())

	_, err := a.Latest(context.Background(), "nobody")
	if err == nil {
		t.Fatal("expected error on cache miss")
	}
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 404 {
		t.Errorf("err = %v, want 404 AppError", err)
	}
}

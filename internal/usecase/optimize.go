package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"HedgeFolio/internal/domain/models"
	domrepo "HedgeFolio/internal/domain/repository"
	"HedgeFolio/internal/optimizer"
	"HedgeFolio/pkg/cache"
	xhttp "HedgeFolio/pkg/http"
	xlogger "HedgeFolio/pkg/logger"
)

// Allocator runs the optimization engine for API callers: it rejects contract
// violations up front, runs the pure engine, records metrics, caches the
// latest result per account and hands the instructions to the downstream
// publisher.
type Allocator struct {
	engine    *optimizer.Optimizer
	cache     cache.Service
	publisher domrepo.InstructionPublisher
	metrics   domrepo.Metrics
	logger    *xlogger.Logger
	cacheTTL  time.Duration
}

func NewAllocator(
	engine *optimizer.Optimizer,
	c cache.Service,
	publisher domrepo.InstructionPublisher,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
	cacheTTL time.Duration,
) *Allocator {
	return &Allocator{
		engine:    engine,
		cache:     c,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Optimize validates the request, runs one optimization pass and fans the
// result out to cache and publisher. Publish failures do not fail the call;
// the response already carries the instructions.
func (a *Allocator) Optimize(ctx context.Context, req *models.OptimizeRequest) (*models.PortfolioResponse, error) {
	signals := req.ToSignals()

	var populated int
	for _, sigs := range signals {
		populated += len(sigs)
	}
	if populated == 0 {
		a.metrics.RecordOptimization("rejected")
		return nil, xhttp.BadRequestError("no strategy signals supplied for any asset")
	}

	tolerance := 0.6
	if req.RiskTolerance != nil {
		tolerance = *req.RiskTolerance
	}

	start := time.Now()
	portfolio := a.engine.Optimize(signals, req.Holdings, req.TotalValueUSD, tolerance)
	a.metrics.RecordLatency("optimize", time.Since(start).Seconds())
	a.metrics.RecordOptimization("ok")
	a.metrics.RecordHedgeRatio(req.Account, portfolio.HedgeRatio)
	a.metrics.RecordRiskScore(req.Account, portfolio.RiskScore)
	a.metrics.RecordSharpe(req.Account, portfolio.SharpeRatio)

	resp := models.NewPortfolioResponse(req.Account, portfolio)

	a.storeLatest(ctx, req.Account, resp)

	if err := a.publisher.PublishPortfolio(ctx, req.Account, resp); err != nil {
		a.metrics.RecordError("publish")
		a.logger.Error("instruction publish failed",
			xlogger.String("account", req.Account), xlogger.Error(err))
	} else {
		a.metrics.RecordInstructionsPublished(req.Account, len(resp.Allocations))
	}

	a.logger.Info("portfolio optimized",
		xlogger.String("account", req.Account),
		xlogger.Int("allocations", len(resp.Allocations)),
		xlogger.Float64("hedge_ratio", resp.HedgeRatio),
	)
	return resp, nil
}

// Latest returns the most recent optimization result for an account from the
// result cache. This is a response cache, not portfolio persistence.
func (a *Allocator) Latest(ctx context.Context, account string) (*models.PortfolioResponse, error) {
	var raw string
	if err := a.cache.Get(ctx, latestKey(account), &raw); err != nil {
		if err == cache.ErrCacheMiss {
			return nil, xhttp.NotFoundErrorf("no recent portfolio for account %q", account)
		}
		a.metrics.RecordError("cache_get")
		return nil, xhttp.InternalError("portfolio cache unavailable").WithError(err)
	}

	var resp models.PortfolioResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		a.metrics.RecordError("cache_decode")
		return nil, xhttp.InternalError("corrupt cached portfolio").WithError(err)
	}
	return &resp, nil
}

// storeLatest caches the serialized response. Stored as a JSON string so the
// memory and Redis backends behave identically on read.
func (a *Allocator) storeLatest(ctx context.Context, account string, resp *models.PortfolioResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		a.metrics.RecordError("cache_encode")
		a.logger.Error("portfolio encode failed", xlogger.Error(err))
		return
	}
	if err := a.cache.Set(ctx, latestKey(account), string(data), a.cacheTTL); err != nil {
		a.metrics.RecordError("cache_set")
		a.logger.Warn("portfolio cache write failed",
			xlogger.String("account", account), xlogger.Error(err))
	}
}

func latestKey(account string) string {
	return fmt.Sprintf("portfolio:latest:%s", account)
}

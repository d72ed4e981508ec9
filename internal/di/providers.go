package di

import (
	"fmt"

	"HedgeFolio/internal/domain/repository"
	"HedgeFolio/internal/handler/api"
	"HedgeFolio/internal/optimizer"
	internalrepo "HedgeFolio/internal/repository"
	"HedgeFolio/internal/usecase"
	"HedgeFolio/pkg/cache"
	"HedgeFolio/pkg/config"
	xhttp "HedgeFolio/pkg/http"
	pkgkafka "HedgeFolio/pkg/kafka"
	applogger "HedgeFolio/pkg/logger"
	"HedgeFolio/pkg/metrics"
	"HedgeFolio/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideOptimizerConfig maps the YAML configuration onto engine parameters.
func ProvideOptimizerConfig(cfg *config.Config) optimizer.Config {
	o := cfg.Optimizer
	return optimizer.Config{
		HedgeAsset:           o.HedgeAsset,
		HighRiskAssets:       o.HighRiskAssets,
		MediumRiskAssets:     o.MediumRiskAssets,
		LowRiskAssets:        o.LowRiskAssets,
		HighRiskMultiplier:   o.Multipliers.High,
		MediumRiskMultiplier: o.Multipliers.Medium,
		LowRiskMultiplier:    o.Multipliers.Low,
		SharpeFloor:          o.SharpeFloor,
		BaseHedge:            o.Hedge.Base,
		HedgeRiskStep:        o.Hedge.RiskStep,
		HedgeMax:             o.Hedge.Max,
		ExposureHighLevel:    o.Hedge.HighLevel,
		ExposureHighBump:     o.Hedge.HighBump,
		ExposureMidLevel:     o.Hedge.MidLevel,
		ExposureMidBump:      o.Hedge.MidBump,
		HighRiskCapFactor:    o.Caps.HighFactor,
		MediumRiskCap:        o.Caps.Medium,
		LowRiskCap:           o.Caps.Low,
		StrengthFloor:        o.StrengthFloor,
		RebalanceBand:        o.RebalanceBand,
		MinExitWeight:        o.MinExitWeight,
		RiskFreeRate:         o.RiskFreeRate,
	}
}

// ProvideOptimizer creates the optimization engine.
func ProvideOptimizer(cfg optimizer.Config) *optimizer.Optimizer {
	return optimizer.New(cfg)
}

// ProvideCache creates the result cache. Redis-backed with a local layer when
// enabled, in-process only otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache), nil
}

// ProvidePublisher creates the Kafka instruction publisher, or a no-op when
// Kafka is disabled.
func ProvidePublisher(cfg *config.Config) (repository.InstructionPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopInstructionPublisher{}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaInstructionPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideAllocator creates the optimization use case.
func ProvideAllocator(
	engine *optimizer.Optimizer,
	c cache.Service,
	publisher repository.InstructionPublisher,
	m repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.Allocator {
	return usecase.NewAllocator(engine, c, publisher, m, logger, cfg.Cache.TTL)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *applogger.Logger, alloc *usecase.Allocator, cfg *config.Config) xhttp.Handler {
	return api.NewOptimizeEchoHandler(logger, alloc, cfg.Server.OptimizeBurst, cfg.Server.OptimizeRPS)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	publisher repository.InstructionPublisher,
	c cache.Service,
) *server.App {
	return server.New(cfg, logger, handler, publisher, c)
}

package repository

import (
	"context"

	"HedgeFolio/internal/domain/models"
)

// InstructionPublisher hands finished allocation instructions to the
// downstream trade-execution layer. The optimizer never executes or settles
// anything itself.
type InstructionPublisher interface {
	PublishPortfolio(ctx context.Context, account string, p *models.PortfolioResponse) error
	Close() error
}

type Metrics interface {
	RecordOptimization(outcome string)
	RecordHedgeRatio(account string, ratio float64)
	RecordRiskScore(account string, risk float64)
	RecordSharpe(account string, sharpe float64)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordInstructionsPublished(account string, count int)
}

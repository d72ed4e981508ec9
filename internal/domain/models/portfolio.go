package models

import "time"

// AssetMetrics is the risk-adjusted view of one asset's consensus signal.
type AssetMetrics struct {
	Asset          string
	ExpectedReturn float64
	Risk           float64 // consensus risk level x class multiplier
	Sharpe         float64 // expected return / max(risk, floor)
	Action         Action
	Confidence     float64
	Strength       float64
}

// PortfolioAllocation is one trade instruction: move an asset from its
// current weight toward its target weight.
type PortfolioAllocation struct {
	Asset         string
	CurrentWeight float64
	TargetWeight  float64
	Action        Action
	AmountUSD     float64 // non-negative notional
	Reasoning     string
}

// Portfolio is the result of one optimization pass. It carries the full
// instruction list plus portfolio-level risk metrics. Built fresh per call,
// never mutated; callers own any persistence.
type Portfolio struct {
	Allocations    []PortfolioAllocation
	TotalValueUSD  float64
	RiskScore      float64
	ExpectedReturn float64
	SharpeRatio    float64
	HedgeRatio     float64 // fraction held in the stable hedge asset
	GeneratedAt    time.Time
}

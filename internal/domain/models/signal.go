package models

// Action is a trade recommendation emitted by a strategy or by the optimizer.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Signal is one strategy's recommendation for one asset. Produced upstream by
// independent strategy modules; the optimizer treats it as immutable input.
type Signal struct {
	Strategy       string
	Asset          string
	Action         Action
	Confidence     float64 // 0-1
	Strength       float64 // 0-1
	ExpectedReturn float64 // annualized fraction, signed
	RiskLevel      float64 // >= 0
	Reasoning      string
}

// ConsensusSignal is the per-asset collapse of all strategy signals.
// Action is BUY/SELL only on a strict >50% vote; everything else is HOLD
// with zero strength.
type ConsensusSignal struct {
	Asset          string
	Action         Action
	Confidence     float64 // mean over all signals
	Strength       float64 // vote ratio x mean strength, 0 on HOLD
	ExpectedReturn float64 // mean over all signals
	RiskLevel      float64 // mean over all signals
	BuyCount       int
	SellCount      int
	HoldCount      int
}

package models

// Requests and responses for the optimize HTTP endpoints. Defined in domain for
// consistency and reuse.

// SignalRequest mirrors Signal with transport tags and validation rules.
type SignalRequest struct {
	Strategy       string  `json:"strategy"`
	Action         string  `json:"action" validate:"required,oneof=BUY SELL HOLD"`
	Confidence     float64 `json:"confidence" validate:"gte=0,lte=1"`
	Strength       float64 `json:"strength" validate:"gte=0,lte=1"`
	ExpectedReturn float64 `json:"expected_return"`
	RiskLevel      float64 `json:"risk_level" validate:"gte=0"`
	Reasoning      string  `json:"reasoning"`
}

type OptimizeRequest struct {
	Account string `json:"account" default:"default"`
	// dive twice: map values, then each signal in the slice.
	Signals       map[string][]SignalRequest `json:"signals" validate:"required,min=1,dive,dive"`
	Holdings      map[string]float64         `json:"holdings"` // asset -> USD value
	TotalValueUSD float64                    `json:"total_value_usd" validate:"gte=0"`
	// Pointer so an explicit 0 (maximally conservative) survives defaulting.
	RiskTolerance *float64 `json:"risk_tolerance" default:"0.6" validate:"omitempty,gte=0,lte=1"`
}

// ToSignals converts request signals into domain signals keyed by asset.
func (r *OptimizeRequest) ToSignals() map[string][]Signal {
	out := make(map[string][]Signal, len(r.Signals))
	for asset, sigs := range r.Signals {
		conv := make([]Signal, 0, len(sigs))
		for _, s := range sigs {
			conv = append(conv, Signal{
				Strategy:       s.Strategy,
				Asset:          asset,
				Action:         Action(s.Action),
				Confidence:     s.Confidence,
				Strength:       s.Strength,
				ExpectedReturn: s.ExpectedReturn,
				RiskLevel:      s.RiskLevel,
				Reasoning:      s.Reasoning,
			})
		}
		out[asset] = conv
	}
	return out
}

type AllocationResponse struct {
	Asset         string  `json:"asset"`
	CurrentWeight float64 `json:"current_weight"`
	TargetWeight  float64 `json:"target_weight"`
	Action        string  `json:"action"`
	AmountUSD     float64 `json:"amount_usd"`
	Reasoning     string  `json:"reasoning"`
}

type PortfolioResponse struct {
	Account        string               `json:"account"`
	Allocations    []AllocationResponse `json:"allocations"`
	TotalValueUSD  float64              `json:"total_value_usd"`
	RiskScore      float64              `json:"risk_score"`
	ExpectedReturn float64              `json:"expected_return"`
	SharpeRatio    float64              `json:"sharpe_ratio"`
	HedgeRatio     float64              `json:"usdc_hedge_ratio"`
	GeneratedAt    string               `json:"generated_at"`
}

// NewPortfolioResponse maps a domain portfolio onto the wire shape.
func NewPortfolioResponse(account string, p *Portfolio) *PortfolioResponse {
	allocs := make([]AllocationResponse, 0, len(p.Allocations))
	for _, a := range p.Allocations {
		allocs = append(allocs, AllocationResponse{
			Asset:         a.Asset,
			CurrentWeight: a.CurrentWeight,
			TargetWeight:  a.TargetWeight,
			Action:        string(a.Action),
			AmountUSD:     a.AmountUSD,
			Reasoning:     a.Reasoning,
		})
	}
	return &PortfolioResponse{
		Account:        account,
		Allocations:    allocs,
		TotalValueUSD:  p.TotalValueUSD,
		RiskScore:      p.RiskScore,
		ExpectedReturn: p.ExpectedReturn,
		SharpeRatio:    p.SharpeRatio,
		HedgeRatio:     p.HedgeRatio,
		GeneratedAt:    p.GeneratedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

package optimizer

// RiskClass partitions the asset universe. Assets outside every configured
// set are treated as medium risk.
type RiskClass int

const (
	RiskHigh RiskClass = iota
	RiskMedium
	RiskLow
)

func (rc RiskClass) String() string {
	switch rc {
	case RiskHigh:
		return "high"
	case RiskLow:
		return "low"
	default:
		return "medium"
	}
}

// classifier is a read-only membership table built once at construction, so
// concurrent optimization calls can share it safely.
type classifier struct {
	high map[string]struct{}
	med  map[string]struct{}
	low  map[string]struct{}
}

func newClassifier(cfg Config) *classifier {
	return &classifier{
		high: toSet(cfg.HighRiskAssets),
		med:  toSet(cfg.MediumRiskAssets),
		low:  toSet(cfg.LowRiskAssets),
	}
}

func toSet(assets []string) map[string]struct{} {
	s := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		s[a] = struct{}{}
	}
	return s
}

// Class returns the risk class of an asset. Lookup order matters only for
// misconfigured overlapping sets; high wins, then medium, then low. Unknown
// assets classify as medium (they still take the low/other weight cap, see
// weightCap).
func (c *classifier) Class(asset string) RiskClass {
	if _, ok := c.high[asset]; ok {
		return RiskHigh
	}
	if _, ok := c.med[asset]; ok {
		return RiskMedium
	}
	if _, ok := c.low[asset]; ok {
		return RiskLow
	}
	return RiskMedium
}

func (c *classifier) isHigh(asset string) bool {
	_, ok := c.high[asset]
	return ok
}

func (c *classifier) isMedium(asset string) bool {
	_, ok := c.med[asset]
	return ok
}

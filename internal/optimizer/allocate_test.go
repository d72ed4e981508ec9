package optimizer

import (
	"strings"
	"testing"

	"HedgeFolio/internal/domain/models"
)

func TestAllocations_HoldWithinBand(t *testing.T) {
	o := newTestOptimizer()

	targets := map[string]float64{"BTC": 0.51}
	holdings := map[string]float64{"BTC": 5000}

	allocs := o.Allocations(targets, holdings, 10000)
	if len(allocs) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(allocs))
	}
	a := allocs[0]
	if a.Action != models.ActionHold {
		t.Errorf("action = %s, want HOLD (|diff| 0.01 < band 0.02)", a.Action)
	}
	if a.AmountUSD != 0 {
		t.Errorf("HOLD amount = %f, want 0", a.AmountUSD)
	}
}

func TestAllocations_BuyAndSellAmounts(t *testing.T) {
	o := newTestOptimizer()

	targets := map[string]float64{"BTC": 0.50, "ETH": 0.10}
	holdings := map[string]float64{"BTC": 2000, "ETH": 4000}

	allocs := o.Allocations(targets, holdings, 10000)

	byAsset := make(map[string]models.PortfolioAllocation, len(allocs))
	for _, a := range allocs {
		byAsset[a.Asset] = a
	}

	btc := byAsset["BTC"]
	if btc.Action != models.ActionBuy || !closeTo(btc.AmountUSD, 3000, 1e-6) {
		t.Errorf("BTC: %s %f, want BUY 3000", btc.Action, btc.AmountUSD)
	}
	eth := byAsset["ETH"]
	if eth.Action != models.ActionSell || !closeTo(eth.AmountUSD, 3000, 1e-6) {
		t.Errorf("ETH: %s %f, want SELL 3000", eth.Action, eth.AmountUSD)
	}
	for _, a := range allocs {
		if a.AmountUSD < 0 {
			t.Errorf("%s: negative amount %f", a.Asset, a.AmountUSD)
		}
	}
}

func TestAllocations_ForcedExit(t *testing.T) {
	o := newTestOptimizer()

	targets := map[string]float64{"USDC": 1.0}
	holdings := map[string]float64{"USDC": 5000, "SOL": 4000, "DUST": 50}

	allocs := o.Allocations(targets, holdings, 10000)

	var sol *models.PortfolioAllocation
	for i := range allocs {
		if allocs[i].Asset == "SOL" {
			sol = &allocs[i]
		}
		if allocs[i].Asset == "DUST" {
			t.Error("position at 0.5% is below the exit threshold, must be ignored")
		}
	}
	if sol == nil {
		t.Fatal("dropped SOL position must produce a forced exit")
	}
	if sol.Action != models.ActionSell || sol.TargetWeight != 0 {
		t.Errorf("forced exit: %s target %f, want SELL target 0", sol.Action, sol.TargetWeight)
	}
	if !closeTo(sol.AmountUSD, 4000, 1e-6) {
		t.Errorf("forced exit amount = %f, want full 4000", sol.AmountUSD)
	}
	if !strings.Contains(sol.Reasoning, "Exit position") {
		t.Errorf("reasoning = %q, want exit note", sol.Reasoning)
	}
}

func TestAllocations_ZeroTotalValue(t *testing.T) {
	o := newTestOptimizer()

	targets := map[string]float64{"USDC": 1.0}
	holdings := map[string]float64{"BTC": 123} // stale holdings with zero book value

	allocs := o.Allocations(targets, holdings, 0)
	if len(allocs) != 1 {
		t.Fatalf("expected only the target instruction, got %d", len(allocs))
	}
	a := allocs[0]
	if a.Action != models.ActionBuy || a.AmountUSD != 0 {
		t.Errorf("zero book: %s %f, want BUY 0", a.Action, a.AmountUSD)
	}
}

func TestAllocations_FullHedgeFromEmptyBook(t *testing.T) {
	o := newTestOptimizer()

	allocs := o.Allocations(map[string]float64{"USDC": 1.0}, nil, 10000)
	if len(allocs) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(allocs))
	}
	a := allocs[0]
	if a.Asset != "USDC" || a.Action != models.ActionBuy {
		t.Fatalf("got %s %s, want BUY USDC", a.Action, a.Asset)
	}
	if !closeTo(a.AmountUSD, 10000, 1e-6) {
		t.Errorf("amount = %f, want 10000", a.AmountUSD)
	}
	if !strings.Contains(a.Reasoning, "0.0%") || !strings.Contains(a.Reasoning, "100.0%") {
		t.Errorf("reasoning = %q, want the 0.0%% -> 100.0%% move spelled out", a.Reasoning)
	}
}

func TestAllocations_RoundTripSumsToTotal(t *testing.T) {
	o := newTestOptimizer()

	targets := map[string]float64{"USDC": 0.32, "BTC": 0.40, "LINK": 0.28}
	allocs := o.Allocations(targets, nil, 10000)

	var total float64
	for _, a := range allocs {
		if a.Action != models.ActionBuy {
			t.Errorf("%s: from an empty book every target is a BUY, got %s", a.Asset, a.Action)
		}
		total += a.AmountUSD
	}
	if !closeTo(total, 10000, 1e-6) {
		t.Errorf("BUY amounts sum to %f, want the full 10000", total)
	}
}

func TestAllocations_StableOrdering(t *testing.T) {
	o := newTestOptimizer()

	targets := map[string]float64{"USDC": 0.32, "BTC": 0.40, "LINK": 0.28}
	holdings := map[string]float64{"SOL": 2000, "ARB": 1000}

	first := o.Allocations(targets, holdings, 10000)
	order := make([]string, len(first))
	for i, a := range first {
		order[i] = a.Asset
	}

	// Targets by descending weight, then exits alphabetically.
	want := []string{"BTC", "USDC", "LINK", "ARB", "SOL"}
	for i, asset := range want {
		if order[i] != asset {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

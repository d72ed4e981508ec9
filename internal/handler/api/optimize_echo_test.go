package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"HedgeFolio/internal/optimizer"
	internalrepo "HedgeFolio/internal/repository"
	"HedgeFolio/internal/usecase"
	"HedgeFolio/pkg/cache"
	xhttp "HedgeFolio/pkg/http"
	xlogger "HedgeFolio/pkg/logger"

	"github.com/labstack/echo/v4"
)

type noopMetrics struct{}

func (noopMetrics) RecordOptimization(string)               {}
func (noopMetrics) RecordHedgeRatio(string, float64)        {}
func (noopMetrics) RecordRiskScore(string, float64)         {}
func (noopMetrics) RecordSharpe(string, float64)            {}
func (noopMetrics) RecordError(string)                      {}
func (noopMetrics) RecordLatency(string, float64)           {}
func (noopMetrics) RecordInstructionsPublished(string, int) {}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	alloc := usecase.NewAllocator(
		optimizer.New(optimizer.DefaultConfig()),
		cache.NewMemoryCache(),
		internalrepo.NoopInstructionPublisher{},
		noopMetrics{},
		logger,
		0,
	)
	e := echo.New()
	NewOptimizeEchoHandler(logger, alloc, 0, 0).RegisterRoutes(e)
	return e
}

func postOptimize(t *testing.T, e *echo.Echo, body string) xhttp.APIResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope xhttp.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return envelope
}

func TestOptimizeEndpoint_ValidRequest(t *testing.T) {
	e := newTestServer(t)

	envelope := postOptimize(t, e, `{
		"account": "acct-1",
		"signals": {
			"BTC": [{"strategy": "momentum", "action": "BUY", "confidence": 0.8, "strength": 0.7, "expected_return": 0.05, "risk_level": 0.03}]
		},
		"holdings": {},
		"total_value_usd": 10000
	}`)

	if envelope.Status != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%+v)", envelope.Status, envelope.Data)
	}
}

func TestOptimizeEndpoint_RejectsMalformedSignals(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name   string
		signal string
	}{
		{"unknown_action", `{"action": "YOLO", "confidence": 0.5, "strength": 0.5, "risk_level": 0.1}`},
		{"confidence_out_of_range", `{"action": "BUY", "confidence": 5, "strength": 0.5, "risk_level": 0.1}`},
		{"negative_strength", `{"action": "BUY", "confidence": 0.5, "strength": -3, "risk_level": 0.1}`},
		{"negative_risk", `{"action": "BUY", "confidence": 0.5, "strength": 0.5, "risk_level": -9}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			envelope := postOptimize(t, e, `{
				"account": "acct-1",
				"signals": {"BTC": [`+c.signal+`]},
				"total_value_usd": 10000
			}`)
			if envelope.Status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", envelope.Status)
			}
		})
	}
}

func TestOptimizeEndpoint_RejectsMissingSignals(t *testing.T) {
	e := newTestServer(t)

	envelope := postOptimize(t, e, `{"account": "acct-1", "total_value_usd": 10000}`)
	if envelope.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", envelope.Status)
	}
}

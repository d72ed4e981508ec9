package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	o := cfg.Optimizer
	if o.HedgeAsset != "USDC" {
		t.Errorf("hedge asset = %q, want USDC", o.HedgeAsset)
	}
	if o.Multipliers.High != 1.5 || o.Multipliers.Medium != 1.0 || o.Multipliers.Low != 0.3 {
		t.Errorf("multipliers = %+v", o.Multipliers)
	}
	if o.Hedge.Base != 0.20 || o.Hedge.Max != 0.50 {
		t.Errorf("hedge params = %+v", o.Hedge)
	}
	if o.Caps.HighFactor != 0.25 || o.Caps.Medium != 0.35 || o.Caps.Low != 0.40 {
		t.Errorf("caps = %+v", o.Caps)
	}
	if o.RebalanceBand != 0.02 {
		t.Errorf("rebalance band = %v, want 0.02", o.RebalanceBand)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
optimizer:
  hedge_asset: USDT
  hedge:
    base: 0.10
    max: 0.60
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Optimizer.HedgeAsset != "USDT" {
		t.Errorf("hedge asset = %q, want USDT", cfg.Optimizer.HedgeAsset)
	}
	if cfg.Optimizer.Hedge.Base != 0.10 || cfg.Optimizer.Hedge.Max != 0.60 {
		t.Errorf("hedge = %+v", cfg.Optimizer.Hedge)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing_environment", "server:\n  port: 8080\n"},
		{"kafka_without_brokers", "environment: test\nkafka:\n  enabled: true\n  topic: t\n"},
		{"kafka_without_topic", "environment: test\nkafka:\n  enabled: true\n  brokers: [localhost:9092]\n  topic: \"\"\n"},
		{"redis_without_host", "environment: test\ncache:\n  redis:\n    enabled: true\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, c.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "b1:9092,b2:9092")
	t.Setenv("KAFKA_TOPIC", "portfolio.instructions")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("OPTIMIZE_RPS", "2.5")

	cfg, err := LoadWithEnv(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if !cfg.Kafka.Enabled {
		t.Error("kafka should be enabled by KAFKA_BROKERS")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "b1:9092" {
		t.Errorf("brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Topic != "portfolio.instructions" {
		t.Errorf("topic = %q", cfg.Kafka.Topic)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Server.OptimizeRPS != 2.5 {
		t.Errorf("optimize rps = %v, want 2.5", cfg.Server.OptimizeRPS)
	}
}

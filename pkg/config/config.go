package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"HedgeFolio/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		OptimizeBurst   float64       `yaml:"optimize_burst"`
		OptimizeRPS     float64       `yaml:"optimize_rps"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Optimizer struct {
		HedgeAsset       string   `yaml:"hedge_asset"`
		HighRiskAssets   []string `yaml:"high_risk_assets"`
		MediumRiskAssets []string `yaml:"medium_risk_assets"`
		LowRiskAssets    []string `yaml:"low_risk_assets"`
		Multipliers      struct {
			High   float64 `yaml:"high"`
			Medium float64 `yaml:"medium"`
			Low    float64 `yaml:"low"`
		} `yaml:"risk_multipliers"`
		Hedge struct {
			Base      float64 `yaml:"base"`
			RiskStep  float64 `yaml:"risk_step"`
			Max       float64 `yaml:"max"`
			HighLevel float64 `yaml:"exposure_high_level"`
			HighBump  float64 `yaml:"exposure_high_bump"`
			MidLevel  float64 `yaml:"exposure_mid_level"`
			MidBump   float64 `yaml:"exposure_mid_bump"`
		} `yaml:"hedge"`
		Caps struct {
			HighFactor float64 `yaml:"high_factor"`
			Medium     float64 `yaml:"medium"`
			Low        float64 `yaml:"low"`
		} `yaml:"weight_caps"`
		SharpeFloor   float64 `yaml:"sharpe_floor"`
		StrengthFloor float64 `yaml:"strength_floor"`
		RebalanceBand float64 `yaml:"rebalance_band"`
		MinExitWeight float64 `yaml:"min_exit_weight"`
		RiskFreeRate  float64 `yaml:"risk_free_rate"`
	} `yaml:"optimizer"`
	Cache struct {
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port := splitHostPort(v)
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Host = host
		c.Cache.Redis.Port = port
	}
	if v := os.Getenv("HEDGE_ASSET"); v != "" {
		c.Optimizer.HedgeAsset = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("OPTIMIZE_RPS"); v != "" {
		c.Server.OptimizeRPS = util.ParseFloatDefault(v, c.Server.OptimizeRPS)
	}
	if v := os.Getenv("OPTIMIZE_BURST"); v != "" {
		c.Server.OptimizeBurst = util.ParseFloatDefault(v, c.Server.OptimizeBurst)
	}

	return c, nil
}

// applyDefaults fills zero values with the standard parameter set so a
// minimal YAML file stays valid.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}

	o := &c.Optimizer
	if o.HedgeAsset == "" {
		o.HedgeAsset = "USDC"
	}
	if o.HighRiskAssets == nil {
		o.HighRiskAssets = []string{"BTC", "ETH", "SOL", "FET"}
	}
	if o.MediumRiskAssets == nil {
		o.MediumRiskAssets = []string{"LINK", "AAVE", "LDO", "ARB"}
	}
	if o.LowRiskAssets == nil {
		o.LowRiskAssets = []string{"USDT", "USDC"}
	}
	if o.Multipliers.High == 0 {
		o.Multipliers.High = 1.5
	}
	if o.Multipliers.Medium == 0 {
		o.Multipliers.Medium = 1.0
	}
	if o.Multipliers.Low == 0 {
		o.Multipliers.Low = 0.3
	}
	if o.Hedge.Base == 0 {
		o.Hedge.Base = 0.20
	}
	if o.Hedge.RiskStep == 0 {
		o.Hedge.RiskStep = 0.30
	}
	if o.Hedge.Max == 0 {
		o.Hedge.Max = 0.50
	}
	if o.Hedge.HighLevel == 0 {
		o.Hedge.HighLevel = 2.0
	}
	if o.Hedge.HighBump == 0 {
		o.Hedge.HighBump = 0.15
	}
	if o.Hedge.MidLevel == 0 {
		o.Hedge.MidLevel = 1.5
	}
	if o.Hedge.MidBump == 0 {
		o.Hedge.MidBump = 0.10
	}
	if o.Caps.HighFactor == 0 {
		o.Caps.HighFactor = 0.25
	}
	if o.Caps.Medium == 0 {
		o.Caps.Medium = 0.35
	}
	if o.Caps.Low == 0 {
		o.Caps.Low = 0.40
	}
	if o.SharpeFloor == 0 {
		o.SharpeFloor = 0.01
	}
	if o.StrengthFloor == 0 {
		o.StrengthFloor = 0.5
	}
	if o.RebalanceBand == 0 {
		o.RebalanceBand = 0.02
	}
	if o.MinExitWeight == 0 {
		o.MinExitWeight = 0.01
	}
	if o.RiskFreeRate == 0 {
		o.RiskFreeRate = 0.02
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
	if c.Cache.Redis.Port == 0 {
		c.Cache.Redis.Port = 6379
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "hedgefolio"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	o := &c.Optimizer
	if o.Hedge.Base <= 0 || o.Hedge.Base > 1 {
		return fmt.Errorf("optimizer.hedge.base must be in (0, 1], got %f", o.Hedge.Base)
	}
	if o.Hedge.Max < o.Hedge.Base || o.Hedge.Max > 1 {
		return fmt.Errorf("optimizer.hedge.max must be in [base, 1], got %f", o.Hedge.Max)
	}
	if o.Multipliers.High <= 0 || o.Multipliers.Medium <= 0 || o.Multipliers.Low <= 0 {
		return fmt.Errorf("optimizer.risk_multipliers must be positive")
	}
	if o.RebalanceBand < 0 || o.RebalanceBand >= 1 {
		return fmt.Errorf("optimizer.rebalance_band must be in [0, 1), got %f", o.RebalanceBand)
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Host == "" {
		return fmt.Errorf("cache.redis.host is required when redis is enabled")
	}
	return nil
}

func splitHostPort(addr string) (string, int) {
	host, portStr, ok := strings.Cut(addr, ":")
	if !ok {
		return addr, 6379
	}
	return host, util.ParseIntDefault(portStr, 6379)
}

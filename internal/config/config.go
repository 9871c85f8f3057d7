// Package config loads the VarGuard YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level VarGuard configuration.
type Config struct {
	Risk    RiskConfig    `yaml:"risk"`
	Alerts  AlertsConfig  `yaml:"alerts"`
	Sim     SimConfig     `yaml:"sim"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RiskConfig holds the regime thresholds.
type RiskConfig struct {
	VarLimit     float64 `yaml:"var_limit"`     // hard limit; breach at or above
	WarningLevel float64 `yaml:"warning_level"` // must be strictly below var_limit
}

// AlertsConfig holds alert dispatch settings.
type AlertsConfig struct {
	MaxPerMinute int `yaml:"max_per_minute"` // sustained alert rate; excess is dropped
}

// SimConfig parameterizes the Monte Carlo VaR feed.
type SimConfig struct {
	Process       string  `yaml:"process"` // "gbm" or "vasicek"
	InitialValue  float64 `yaml:"initial_value"`
	RiskFreeRate  float64 `yaml:"risk_free_rate"`
	Volatility    float64 `yaml:"volatility"`
	MeanReversion float64 `yaml:"mean_reversion"` // vasicek only
	Maturity      float64 `yaml:"maturity"`
	TimeSteps     int     `yaml:"time_steps"`
	Paths         int     `yaml:"paths"`
	Confidence    float64 `yaml:"confidence"`
	Seed          int64   `yaml:"seed"` // 0 means time-seeded
}

// MetricsConfig holds the HTTP exposure settings.
type MetricsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Risk: RiskConfig{
			VarLimit:     100.0,
			WarningLevel: 80.0,
		},
		Alerts: AlertsConfig{
			MaxPerMinute: 10,
		},
		Sim: SimConfig{
			Process:      "gbm",
			InitialValue: 100.0,
			RiskFreeRate: 0.05,
			Volatility:   0.2,
			Maturity:     1.0,
			TimeSteps:    1000,
			Paths:        500,
			Confidence:   0.95,
		},
		Metrics: MetricsConfig{
			Enabled:    true,
			ListenAddr: ":8084",
		},
	}
}

// Load reads path, unmarshals it over the defaults and validates the
// result. Absent keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the risk manager would refuse.
// Thresholds fail fast here instead of being clamped.
func (c Config) Validate() error {
	if c.Risk.VarLimit <= 0 {
		return errors.New("config: risk.var_limit must be positive")
	}
	if c.Risk.WarningLevel <= 0 || c.Risk.WarningLevel >= c.Risk.VarLimit {
		return fmt.Errorf("config: risk.warning_level %v must be in (0, %v)", c.Risk.WarningLevel, c.Risk.VarLimit)
	}
	if c.Alerts.MaxPerMinute < 1 {
		return errors.New("config: alerts.max_per_minute must be at least 1")
	}
	switch c.Sim.Process {
	case "gbm", "vasicek":
	default:
		return fmt.Errorf("config: unknown sim.process %q", c.Sim.Process)
	}
	if c.Sim.TimeSteps < 1 || c.Sim.Paths < 1 {
		return errors.New("config: sim.time_steps and sim.paths must be positive")
	}
	if c.Sim.Confidence <= 0 || c.Sim.Confidence >= 1 {
		return errors.New("config: sim.confidence must be in (0, 1)")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "varguard.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
risk:
  var_limit: 250.0
  warning_level: 200.0
sim:
  process: vasicek
  mean_reversion: 0.01
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Risk.VarLimit != 250.0 || cfg.Risk.WarningLevel != 200.0 {
		t.Errorf("thresholds not overridden: %+v", cfg.Risk)
	}
	if cfg.Sim.Process != "vasicek" {
		t.Errorf("sim.process = %q, want vasicek", cfg.Sim.Process)
	}
	// Untouched keys keep defaults.
	if cfg.Alerts.MaxPerMinute != 10 {
		t.Errorf("alerts.max_per_minute = %d, want default 10", cfg.Alerts.MaxPerMinute)
	}
	if cfg.Metrics.ListenAddr != ":8084" {
		t.Errorf("metrics.listen_addr = %q, want default :8084", cfg.Metrics.ListenAddr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_RejectsBadThresholds(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
	}{
		{"warning above limit", func(c *Config) { c.Risk.WarningLevel = 150 }},
		{"warning equals limit", func(c *Config) { c.Risk.WarningLevel = c.Risk.VarLimit }},
		{"zero limit", func(c *Config) { c.Risk.VarLimit = 0 }},
		{"negative warning", func(c *Config) { c.Risk.WarningLevel = -5 }},
		{"unknown process", func(c *Config) { c.Sim.Process = "heston" }},
		{"zero paths", func(c *Config) { c.Sim.Paths = 0 }},
		{"confidence out of range", func(c *Config) { c.Sim.Confidence = 1.0 }},
		{"zero alert rate", func(c *Config) { c.Alerts.MaxPerMinute = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "risk: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

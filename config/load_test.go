package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

const validConfig = `
env: dev
strategy:
  investmentAmount: 3000
  rangePercent: 0.05
basket:
  - asset: BTC
    price: 16000
  - asset: ETH
    price: 1200
  - asset: XRP
    price: 0.34
`

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "dev" || cfg.Strategy.InvestmentAmount != 3000 {
		t.Fatalf("unexpected cfg values: %+v", cfg)
	}
	if len(cfg.Basket) != 3 || cfg.Basket[2].Asset != "XRP" {
		t.Fatalf("unexpected basket: %+v", cfg.Basket)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, validConfig)
	t.Setenv("GRID_INVESTMENT", "5000")
	t.Setenv("GRID_RANGE_PERCENT", "0.1")
	cfg, err := LoadWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Strategy.InvestmentAmount != 5000 || cfg.Strategy.RangePercent != 0.1 {
		t.Fatalf("env overrides not applied: %+v", cfg.Strategy)
	}
}

func TestLoadWithEnvOverridesRejectsBadValue(t *testing.T) {
	path := writeTempConfig(t, validConfig)
	t.Setenv("GRID_INVESTMENT", "plenty")
	if _, err := LoadWithEnvOverrides(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(AppConfig{}); err == nil {
		t.Fatalf("expected error for empty config")
	}

	cfg := AppConfig{
		Env:      "dev",
		Strategy: StrategyConfig{InvestmentAmount: 100, RangePercent: 1.5},
		Basket:   []AssetConfig{{Asset: "ETH", Price: 1200}},
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for rangePercent > 1")
	}

	cfg.Strategy.RangePercent = 0.05
	cfg.Basket[0].Price = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for non-positive price")
	}

	cfg.Basket[0].Price = 1200
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

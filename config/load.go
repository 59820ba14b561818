package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the planner runtime configuration.
type AppConfig struct {
	Env      string         `yaml:"env"`
	Strategy StrategyConfig `yaml:"strategy"`
	Basket   []AssetConfig  `yaml:"basket"`
}

// StrategyConfig 策略配置：总投入与价格区间宽度（0.05 = 5%）。
type StrategyConfig struct {
	InvestmentAmount float64 `yaml:"investmentAmount"`
	RangePercent     float64 `yaml:"rangePercent"`
}

// AssetConfig 篮子条目。价格为计划时点的参考价，来自外部行情源。
type AssetConfig struct {
	Asset string  `yaml:"asset"`
	Price float64 `yaml:"price"`
}

// Load reads YAML config from path and applies basic validation.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config then overrides strategy fields from env vars if present.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("GRID_INVESTMENT"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse GRID_INVESTMENT: %w", err)
		}
		cfg.Strategy.InvestmentAmount = amount
	}
	if v := os.Getenv("GRID_RANGE_PERCENT"); v != "" {
		rp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse GRID_RANGE_PERCENT: %w", err)
		}
		cfg.Strategy.RangePercent = rp
	}
	return cfg, Validate(cfg)
}

// Validate ensures required fields are present and inside domain bounds.
func Validate(cfg AppConfig) error {
	if cfg.Env == "" {
		return errors.New("env is required")
	}
	if cfg.Strategy.InvestmentAmount <= 0 {
		return errors.New("strategy.investmentAmount must be > 0")
	}
	if cfg.Strategy.RangePercent <= 0 || cfg.Strategy.RangePercent > 1 {
		return errors.New("strategy.rangePercent must be in (0, 1]")
	}
	if len(cfg.Basket) == 0 {
		return errors.New("basket is required")
	}
	for i, entry := range cfg.Basket {
		if entry.Asset == "" {
			return fmt.Errorf("basket[%d] asset is required", i)
		}
		if entry.Price <= 0 {
			return fmt.Errorf("basket[%d] %s price must be > 0", i, entry.Asset)
		}
	}
	return nil
}

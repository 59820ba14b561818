package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"grid-strategy-go/config"
	"grid-strategy-go/infrastructure/logger"
	"grid-strategy-go/metrics"
	"grid-strategy-go/strategy"
)

// gridwatch 监听配置文件并在每次变更后重算网格计划。
// 只计算与上报，不做任何下单或行情接入。
func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	metricsAddr := flag.String("metricsAddr", ":9100", "Prometheus metrics 监听地址，留空则关闭")
	cooldown := flag.Duration("reloadCooldown", 2*time.Second, "两次重载之间的最小间隔")
	logLevel := flag.String("logLevel", "info", "日志级别")
	flag.Parse()

	logCfg := logger.DefaultConfig()
	logCfg.Level = *logLevel
	lg, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer lg.Close()

	if *metricsAddr != "" {
		metrics.StartMetricsServer(*metricsAddr)
	}

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	rebuild(lg, cfg)

	watcher, err := config.NewWatcher(*cfgPath, *cooldown)
	if err != nil {
		log.Fatalf("创建配置监听失败: %v", err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
	lg.Info("gridwatch started")

	if err := watcher.Start(ctx, func(cfg config.AppConfig) {
		rebuild(lg, cfg)
	}); err != nil && ctx.Err() == nil {
		lg.LogError(err, map[string]interface{}{"stage": "watch"})
	}

	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
	lg.Info("gridwatch stopped")
}

// rebuild 由最新配置重算全部资产的网格计划并写日志与指标。
func rebuild(lg *logger.Logger, cfg config.AppConfig) {
	s, err := strategy.NewStrategy(cfg.Strategy.InvestmentAmount, cfg.Strategy.RangePercent)
	if err != nil {
		metrics.ReloadFailures.Inc()
		lg.LogError(err, map[string]interface{}{"stage": "strategy"})
		return
	}

	basket := make([]strategy.AssetPrice, 0, len(cfg.Basket))
	for _, entry := range cfg.Basket {
		basket = append(basket, strategy.AssetPrice{Asset: entry.Asset, Price: entry.Price})
	}

	plans, err := strategy.BuildPlan(s, basket)
	if err != nil {
		metrics.ReloadFailures.Inc()
		lg.LogError(err, map[string]interface{}{"stage": "plan"})
		return
	}

	metrics.ObservePlan(plans)
	for _, plan := range plans {
		lg.LogPlan("plan_rebuilt", map[string]interface{}{
			"asset":               plan.Asset,
			"price":               plan.Price,
			"allocation":          plan.Allocation,
			"grid_size":           plan.Params.GridSize,
			"investment_per_grid": plan.Params.InvestmentPerGrid,
		})
	}
}

// Package metrics provides Prometheus metrics for the grid planner
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grid-strategy-go/strategy"
)

var (
	// PlanRebuilds 计划重算总次数
	PlanRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grid_plan_rebuilds_total",
		Help: "Total number of plan recomputations",
	})

	// ReloadFailures 配置重载失败总次数
	ReloadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grid_reload_failures_total",
		Help: "Total number of failed config reloads",
	})

	// GridSize 各资产当前网格档数
	GridSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "grid_size_levels",
		Help: "Grid levels per asset",
	}, []string{"asset"})

	// InvestmentPerGrid 各资产单格投入
	InvestmentPerGrid = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "grid_investment_per_level",
		Help: "Investment per grid level per asset",
	}, []string{"asset"})

	// Allocation 各资产预算份额
	Allocation = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "grid_allocation",
		Help: "Budget allocation per asset",
	}, []string{"asset"})

	// OrdersPlanned 各资产两侧计划挂单数
	OrdersPlanned = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "grid_orders_planned",
		Help: "Planned orders per asset and side",
	}, []string{"asset", "side"})
)

// ObservePlan 将一次计划重算的结果写入指标
func ObservePlan(plans []strategy.AssetPlan) {
	PlanRebuilds.Inc()
	for _, plan := range plans {
		GridSize.WithLabelValues(plan.Asset).Set(float64(plan.Params.GridSize))
		InvestmentPerGrid.WithLabelValues(plan.Asset).Set(plan.Params.InvestmentPerGrid)
		Allocation.WithLabelValues(plan.Asset).Set(plan.Allocation)
		OrdersPlanned.WithLabelValues(plan.Asset, string(strategy.SideBuy)).Set(float64(len(plan.Buys)))
		OrdersPlanned.WithLabelValues(plan.Asset, string(strategy.SideSell)).Set(float64(len(plan.Sells)))
	}
}

// StartMetricsServer 启动Prometheus指标服务器
func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, nil)
	}()
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/olekukonko/tablewriter"

	"grid-strategy-go/config"
	"grid-strategy-go/export"
	"grid-strategy-go/strategy"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	csvDir := flag.String("csvDir", "", "订单 CSV 输出目录，留空则不导出")
	flag.Parse()

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	s, err := strategy.NewStrategy(cfg.Strategy.InvestmentAmount, cfg.Strategy.RangePercent)
	if err != nil {
		log.Fatalf("策略配置无效: %v", err)
	}

	plans, err := strategy.BuildPlan(s, basketFromConfig(cfg))
	if err != nil {
		log.Fatalf("生成网格计划失败: %v", err)
	}

	printPlans(os.Stdout, plans)

	if *csvDir != "" {
		if err := os.MkdirAll(*csvDir, 0o755); err != nil {
			log.Fatalf("创建输出目录失败: %v", err)
		}
		for _, plan := range plans {
			if err := export.WritePlanCSV(*csvDir, plan); err != nil {
				log.Fatalf("导出 %s 订单失败: %v", plan.Asset, err)
			}
		}
		fmt.Printf("orders written to %s\n", *csvDir)
	}
}

func basketFromConfig(cfg config.AppConfig) []strategy.AssetPrice {
	basket := make([]strategy.AssetPrice, 0, len(cfg.Basket))
	for _, entry := range cfg.Basket {
		basket = append(basket, strategy.AssetPrice{Asset: entry.Asset, Price: entry.Price})
	}
	return basket
}

func printPlans(w io.Writer, plans []strategy.AssetPlan) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Asset", "Price", "Allocation", "Grids", "Per Grid", "Buy Range", "Sell Range"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	for _, p := range plans {
		table.Append([]string{
			p.Asset,
			fmt.Sprintf("%.4f", p.Price),
			fmt.Sprintf("%.2f", p.Allocation),
			fmt.Sprintf("%d", p.Params.GridSize),
			fmt.Sprintf("%.2f", p.Params.InvestmentPerGrid),
			fmt.Sprintf("%.4f ~ %.4f", p.Buys[len(p.Buys)-1].Price, p.Buys[0].Price),
			fmt.Sprintf("%.4f ~ %.4f", p.Sells[0].Price, p.Sells[len(p.Sells)-1].Price),
		})
	}
	table.Render()
}

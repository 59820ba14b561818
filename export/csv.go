// Package export writes computed order ladders to CSV for downstream tooling.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"grid-strategy-go/strategy"
)

// WriteOrdersCSV 将订单列表落盘为 CSV，表头为 side,price,size。
func WriteOrdersCSV(path string, orders []strategy.Order) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&orders, f); err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	return nil
}

// WritePlanCSV 为一个资产计划落盘买卖两份 CSV，
// 命名沿用 <asset>_buy_orders.csv / <asset>_sell_orders.csv。
func WritePlanCSV(dir string, plan strategy.AssetPlan) error {
	buyPath := filepath.Join(dir, fmt.Sprintf("%s_buy_orders.csv", plan.Asset))
	if err := WriteOrdersCSV(buyPath, plan.Buys); err != nil {
		return err
	}
	sellPath := filepath.Join(dir, fmt.Sprintf("%s_sell_orders.csv", plan.Asset))
	return WriteOrdersCSV(sellPath, plan.Sells)
}

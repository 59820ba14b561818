package strategy

import "fmt"

// AssetPlan 单个资产的网格计划：预算份额、网格参数与双向挂单。
type AssetPlan struct {
	Asset      string
	Price      float64
	Allocation float64
	Params     GridParams
	Buys       []Order
	Sells      []Order
}

// BuildPlan 先按价格权重拆分预算，再以各资产现价为参考价、
// 以其份额为投入逐个推导网格参数并生成买卖两条挂单梯子。
// 任一资产出错则整体失败，不返回部分结果。
func BuildPlan(s Strategy, basket []AssetPrice) ([]AssetPlan, error) {
	allocations, err := s.Divide(basket)
	if err != nil {
		return nil, err
	}

	plans := make([]AssetPlan, 0, len(basket))
	for i, entry := range basket {
		params, err := ResolveGridParams(s.rangePercent, allocations[i])
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", entry.Asset, err)
		}
		buys, err := OrdersForRange(params, s.rangePercent, entry.Price, SideBuy)
		if err != nil {
			return nil, fmt.Errorf("buy orders %s: %w", entry.Asset, err)
		}
		sells, err := OrdersForRange(params, s.rangePercent, entry.Price, SideSell)
		if err != nil {
			return nil, fmt.Errorf("sell orders %s: %w", entry.Asset, err)
		}
		plans = append(plans, AssetPlan{
			Asset:      entry.Asset,
			Price:      entry.Price,
			Allocation: allocations[i],
			Params:     params,
			Buys:       buys,
			Sells:      sells,
		})
	}
	return plans, nil
}

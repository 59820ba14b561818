package strategy

import "fmt"

// AssetPrice 资产标识及其现价。重复的标识视为独立条目，各自获得份额。
type AssetPrice struct {
	Asset string
	Price float64
}

// DivideInvestment 按价格权重把总投入拆分到篮子中的每个资产。
// 返回切片与 basket 同序同长，权重只看价格，不含波动率/流动性概念；
// 需要风险调整时由调用方先变换价格。分配之和在浮点误差内等于 investment。
func DivideInvestment(investment float64, basket []AssetPrice) ([]float64, error) {
	if investment < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvestmentNegative, investment)
	}
	if len(basket) == 0 {
		return nil, ErrEmptyBasket
	}

	total := 0.0
	for _, entry := range basket {
		if entry.Price <= 0 {
			return nil, fmt.Errorf("%w: %s %v", ErrPriceNotPositive, entry.Asset, entry.Price)
		}
		total += entry.Price
	}

	allocations := make([]float64, len(basket))
	for i, entry := range basket {
		allocations[i] = entry.Price / total * investment
	}
	return allocations, nil
}

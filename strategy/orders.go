package strategy

import "fmt"

// Side 订单方向。只接受 BUY/SELL，其它取值视为领域错误。
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Order 订单描述。提交、撤单与成交跟踪由外部执行层负责，
// 本包只产出 (side, price, size) 三元组。
type Order struct {
	Side  Side    `csv:"side"`
	Price float64 `csv:"price"`
	Size  float64 `csv:"size"`
}

// OrdersForRange 围绕参考价生成整条网格挂单，长度恰为 GridSize。
// 第 i 档（i=1..GridSize）买单向下、卖单向上等距偏移 rangePercent*price*i/GridSize，
// size = InvestmentPerGrid / orderPrice。买单价格随 i 严格递减，卖单严格递增。
// rangePercent >= 1 会把买单价格推到非正值，两侧统一拒绝。
func OrdersForRange(params GridParams, rangePercent, price float64, side Side) ([]Order, error) {
	if params.GridSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrGridSizeNotPositive, params.GridSize)
	}
	if params.InvestmentPerGrid <= 0 {
		return nil, fmt.Errorf("%w: investmentPerGrid %v", ErrInvestmentNotPositive, params.InvestmentPerGrid)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: reference %v", ErrPriceNotPositive, price)
	}
	if rangePercent <= 0 || rangePercent >= 1 {
		return nil, fmt.Errorf("%w: rangePercent %v", ErrRangeOutOfBounds, rangePercent)
	}
	switch side {
	case SideBuy, SideSell:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}

	step := rangePercent * price / float64(params.GridSize)
	orders := make([]Order, 0, params.GridSize)
	for i := 1; i <= params.GridSize; i++ {
		orderPrice := price + step*float64(i)
		if side == SideBuy {
			orderPrice = price - step*float64(i)
		}
		orders = append(orders, Order{
			Side:  side,
			Price: orderPrice,
			Size:  params.InvestmentPerGrid / orderPrice,
		})
	}
	return orders, nil
}

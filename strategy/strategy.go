package strategy

import "fmt"

// Strategy 不可变的策略配置：总投入与价格区间宽度。
// 构造后不再修改，所有方法均为纯函数，可被任意多个 goroutine 并发调用。
type Strategy struct {
	investment   float64
	rangePercent float64
}

// NewStrategy 校验后构造策略配置。investment 必须为正，
// rangePercent 取值 (0, 1]。
func NewStrategy(investment, rangePercent float64) (Strategy, error) {
	if investment <= 0 {
		return Strategy{}, fmt.Errorf("%w: %v", ErrInvestmentNotPositive, investment)
	}
	if rangePercent <= 0 || rangePercent > 1 {
		return Strategy{}, fmt.Errorf("%w: rangePercent %v", ErrRangeOutOfBounds, rangePercent)
	}
	return Strategy{investment: investment, rangePercent: rangePercent}, nil
}

func (s Strategy) Investment() float64   { return s.investment }
func (s Strategy) RangePercent() float64 { return s.rangePercent }

// GridParams 推导本策略的网格参数。
func (s Strategy) GridParams() (GridParams, error) {
	return ResolveGridParams(s.rangePercent, s.investment)
}

// Divide 按价格权重拆分本策略的总投入。
func (s Strategy) Divide(basket []AssetPrice) ([]float64, error) {
	return DivideInvestment(s.investment, basket)
}

// OrdersForRange 以 price 为参考价生成本策略的网格挂单。
func (s Strategy) OrdersForRange(price float64, side Side) ([]Order, error) {
	params, err := s.GridParams()
	if err != nil {
		return nil, err
	}
	return OrdersForRange(params, s.rangePercent, price, side)
}

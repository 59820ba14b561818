package strategy

import (
	"fmt"
	"math"
)

// GridParams 网格参数：档位数与单格投入。
// 由 ResolveGridParams 推导，配置变化时重新计算，不做持久化。
type GridParams struct {
	GridSize          int
	InvestmentPerGrid float64
}

// ResolveGridParams 根据区间宽度与总投入推导网格参数。
// rangePercent 为价格区间宽度（如 0.05 = 5%），越窄网格越密；
// rangePercent >= 1 时只保留 1 档。GridSize * InvestmentPerGrid
// 在浮点误差内等于 investment。
func ResolveGridParams(rangePercent, investment float64) (GridParams, error) {
	if rangePercent <= 0 {
		return GridParams{}, fmt.Errorf("%w: rangePercent %v", ErrRangeOutOfBounds, rangePercent)
	}
	if investment <= 0 {
		return GridParams{}, fmt.Errorf("%w: %v", ErrInvestmentNotPositive, investment)
	}

	gridSize := int(math.Floor(1 / rangePercent))
	if gridSize < 1 {
		gridSize = 1
	}

	return GridParams{
		GridSize:          gridSize,
		InvestmentPerGrid: investment / float64(gridSize),
	}, nil
}

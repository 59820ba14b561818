package strategy

// SymmetricGrid 以 anchor 为中心、step 为间距生成对称价格档，
// 共 2*levels+1 个价格（含 anchor 本身），升序排列。
func SymmetricGrid(anchor, step float64, levels int) []float64 {
	if levels < 0 {
		levels = 0
	}
	prices := make([]float64, 0, levels*2+1)
	for i := -levels; i <= levels; i++ {
		prices = append(prices, anchor+step*float64(i))
	}
	return prices
}

package strategy

import (
	"errors"
	"math"
	"testing"
)

func TestResolveGridParams(t *testing.T) {
	params, err := ResolveGridParams(0.05, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.GridSize != 20 {
		t.Fatalf("expected 20 grids, got %d", params.GridSize)
	}
	if params.InvestmentPerGrid != 50 {
		t.Fatalf("expected 50 per grid, got %v", params.InvestmentPerGrid)
	}
}

func TestResolveGridParamsFloor(t *testing.T) {
	// 1/0.03 = 33.33...，向下取整
	params, err := ResolveGridParams(0.03, 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.GridSize != 33 {
		t.Fatalf("expected 33 grids, got %d", params.GridSize)
	}
	product := float64(params.GridSize) * params.InvestmentPerGrid
	if math.Abs(product-999) > 1e-9 {
		t.Fatalf("grid product drifted: %v", product)
	}
}

func TestResolveGridParamsWideRange(t *testing.T) {
	// 区间宽度 >= 1 退化为单档
	for _, rp := range []float64{1, 1.5} {
		params, err := ResolveGridParams(rp, 100)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", rp, err)
		}
		if params.GridSize != 1 || params.InvestmentPerGrid != 100 {
			t.Fatalf("expected single grid for %v, got %+v", rp, params)
		}
	}
}

func TestResolveGridParamsRejectsBadInput(t *testing.T) {
	if _, err := ResolveGridParams(0, 1000); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Fatalf("expected range error, got %v", err)
	}
	if _, err := ResolveGridParams(-0.05, 1000); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Fatalf("expected range error, got %v", err)
	}
	if _, err := ResolveGridParams(0.05, 0); !errors.Is(err, ErrInvestmentNotPositive) {
		t.Fatalf("expected investment error, got %v", err)
	}
	if _, err := ResolveGridParams(0.05, -1); !errors.Is(err, ErrInvestmentNotPositive) {
		t.Fatalf("expected investment error, got %v", err)
	}
}

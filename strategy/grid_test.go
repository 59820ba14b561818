package strategy

import "testing"

func TestSymmetricGrid(t *testing.T) {
	grid := SymmetricGrid(100, 10, 2)
	want := []float64{80, 90, 100, 110, 120}
	if len(grid) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(grid))
	}
	for i := range want {
		if grid[i] != want[i] {
			t.Fatalf("unexpected grid: %v", grid)
		}
	}
}

func TestSymmetricGridZeroLevels(t *testing.T) {
	grid := SymmetricGrid(42, 1, 0)
	if len(grid) != 1 || grid[0] != 42 {
		t.Fatalf("expected anchor only, got %v", grid)
	}
}

package search

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// stubTrainer returns models whose accuracy is controlled by the tree count:
// a model predicts sample i (features[1] == i) correctly when i%10 is below
// point.Trees, so accuracy is roughly Trees/10. Deterministic regardless of
// worker scheduling.
type stubTrainer struct {
	failOn func(Point) bool
}

type stubModel struct {
	quality int
}

func (t *stubTrainer) Train(X [][]float64, y []int, point Point) (Model, error) {
	if t.failOn != nil && t.failOn(point) {
		return nil, fmt.Errorf("simulated failure")
	}
	return &stubModel{quality: point.Trees}, nil
}

func (m *stubModel) Predict(features []float64) (int, error) {
	trueLabel := int(features[0])
	if int(features[1])%10 < m.quality {
		return trueLabel, nil
	}
	return trueLabel + 1, nil
}

func makeValidation(n int) ([][]float64, []int) {
	X := make([][]float64, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		label := 1 + i%3
		X[i] = []float64{float64(label), float64(i)}
		y[i] = label
	}
	return X, y
}

func TestGridCartesianOrder(t *testing.T) {
	grid := Grid([]int{2, 5}, []float64{0.5, 0.9})

	expected := []Point{
		{Trees: 2, BagFraction: 0.5},
		{Trees: 2, BagFraction: 0.9},
		{Trees: 5, BagFraction: 0.5},
		{Trees: 5, BagFraction: 0.9},
	}
	if !reflect.DeepEqual(grid, expected) {
		t.Fatalf("expected %v, got %v", expected, grid)
	}
}

func TestRunSelectsBestPoint(t *testing.T) {
	valX, valY := makeValidation(100)
	grid := Grid([]int{2, 8, 5}, []float64{0.7})

	results, best, err := Run(&stubTrainer{}, valX, valY, valX, valY, grid, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(grid) {
		t.Fatalf("expected %d results, got %d", len(grid), len(results))
	}
	if results[best].Point.Trees != 8 {
		t.Errorf("expected trees=8 selected, got %s", results[best].Point)
	}
	// Results stay in grid-enumeration order whatever the workers did.
	for i, result := range results {
		if result.Point != grid[i] {
			t.Errorf("result %d out of grid order: %s", i, result.Point)
		}
	}
}

func TestRunTieBreakFirstEncountered(t *testing.T) {
	valX, valY := makeValidation(60)
	// Both points reach perfect accuracy; the first in grid order wins.
	grid := Grid([]int{10}, []float64{0.5, 0.9})

	_, best, err := Run(&stubTrainer{}, valX, valY, valX, valY, grid, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best != 0 {
		t.Errorf("expected first-encountered tie-break, got index %d", best)
	}
}

func TestRunDeterministic(t *testing.T) {
	valX, valY := makeValidation(90)
	grid := Grid([]int{1, 4, 7}, []float64{0.5, 0.8})

	_, first, err := Run(&stubTrainer{}, valX, valY, valX, valY, grid, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, second, err := Run(&stubTrainer{}, valX, valY, valX, valY, grid, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("selection differs across runs: %d vs %d", first, second)
	}
}

func TestRunToleratesPartialFailures(t *testing.T) {
	valX, valY := makeValidation(50)
	grid := Grid([]int{3, 6}, []float64{0.25, 0.75})

	trainer := &stubTrainer{failOn: func(p Point) bool { return p.BagFraction == 0.25 }}
	results, best, err := Run(trainer, valX, valY, valX, valY, grid, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed != 2 {
		t.Errorf("expected 2 failed points recorded, got %d", failed)
	}
	if results[best].Err != nil {
		t.Fatal("selected point must be a successful one")
	}
	if results[best].Point.Trees != 6 {
		t.Errorf("expected trees=6 selected among survivors, got %s", results[best].Point)
	}
}

func TestRunNoViableModel(t *testing.T) {
	valX, valY := makeValidation(20)
	grid := Grid([]int{3, 6}, []float64{0.5})

	trainer := &stubTrainer{failOn: func(Point) bool { return true }}
	results, _, err := Run(trainer, valX, valY, valX, valY, grid, 2)
	if !errors.Is(err, ErrNoViableModel) {
		t.Fatalf("expected ErrNoViableModel, got %v", err)
	}
	// The full result list is still reported for inspection.
	if len(results) != len(grid) {
		t.Fatalf("expected %d results despite total failure, got %d", len(grid), len(results))
	}
}

func TestRunEmptyGrid(t *testing.T) {
	valX, valY := makeValidation(10)
	if _, _, err := Run(&stubTrainer{}, valX, valY, valX, valY, nil, 2); !errors.Is(err, ErrNoViableModel) {
		t.Fatalf("expected ErrNoViableModel for empty grid, got %v", err)
	}
}

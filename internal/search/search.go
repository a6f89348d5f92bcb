package search

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/landwatch/landcover-validation-poc/internal/accuracy"
)

// ErrNoViableModel is returned when every grid point failed to train.
var ErrNoViableModel = errors.New("no grid point produced a usable model")

// Model is a trained classifier: a function from feature vector to class
// label. Its internals are opaque to the search.
type Model interface {
	Predict(features []float64) (int, error)
}

// BatchModel is implemented by models that can classify many vectors per
// call; remote models use it to avoid a round trip per sample.
type BatchModel interface {
	PredictBatch(features [][]float64) ([]int, error)
}

// Trainer builds a Model from labeled feature vectors under one
// hyperparameter point.
type Trainer interface {
	Train(X [][]float64, y []int, point Point) (Model, error)
}

// Point is one hyperparameter combination of the classifier: the tree count
// and bagging fraction of the underlying random forest.
type Point struct {
	Trees       int
	BagFraction float64
}

func (p Point) String() string {
	return fmt.Sprintf("trees=%d bag=%.2f", p.Trees, p.BagFraction)
}

// Grid builds the flat Cartesian product of the two hyperparameter ranges,
// trees outermost. The slice order is the enumeration order used for
// tie-breaking.
func Grid(trees []int, bagFractions []float64) []Point {
	var grid []Point
	for _, t := range trees {
		for _, b := range bagFractions {
			grid = append(grid, Point{Trees: t, BagFraction: b})
		}
	}
	return grid
}

// Result is the outcome of one grid point: its validation accuracy, or the
// training error that sidelined it.
type Result struct {
	Point    Point
	Accuracy float64
	Matrix   *accuracy.Matrix
	Err      error
}

// Run trains one model per grid point on the training partition, scores each
// against the validation partition and returns every result in grid order
// plus the index of the best point. Points are trained concurrently on up to
// workers goroutines; each worker writes only its own result slot, so the
// aggregation is order-independent and the final selection scans the slice
// in grid-enumeration order (ties go to the first-encountered point).
// Individual training failures are recorded and skipped; only a fully failed
// grid yields ErrNoViableModel.
func Run(trainer Trainer, trainX [][]float64, trainY []int, valX [][]float64, valY []int, grid []Point, workers int) ([]Result, int, error) {
	if len(grid) == 0 {
		return nil, 0, fmt.Errorf("%w: empty hyperparameter grid", ErrNoViableModel)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(grid))

	wp := workerpool.New(workers)
	var mu sync.Mutex
	for i, point := range grid {
		i, point := i, point
		wp.Submit(func() {
			result := evaluatePoint(trainer, trainX, trainY, valX, valY, point)
			mu.Lock()
			results[i] = result
			mu.Unlock()
		})
	}
	wp.StopWait()

	best := -1
	for i, result := range results {
		if result.Err != nil {
			continue
		}
		if best < 0 || result.Accuracy > results[best].Accuracy {
			best = i
		}
	}
	if best < 0 {
		return results, 0, fmt.Errorf("%w: all %d grid points failed", ErrNoViableModel, len(grid))
	}

	return results, best, nil
}

func evaluatePoint(trainer Trainer, trainX [][]float64, trainY []int, valX [][]float64, valY []int, point Point) Result {
	model, err := trainer.Train(trainX, trainY, point)
	if err != nil {
		return Result{Point: point, Err: fmt.Errorf("training %s: %w", point, err)}
	}

	var predicted []int
	if batch, ok := model.(BatchModel); ok {
		predicted, err = batch.PredictBatch(valX)
		if err != nil {
			return Result{Point: point, Err: fmt.Errorf("predicting with %s: %w", point, err)}
		}
	} else {
		predicted = make([]int, len(valX))
		for i, features := range valX {
			label, err := model.Predict(features)
			if err != nil {
				return Result{Point: point, Err: fmt.Errorf("predicting with %s: %w", point, err)}
			}
			predicted[i] = label
		}
	}

	if len(predicted) != len(valY) {
		return Result{Point: point, Err: fmt.Errorf("scoring %s: got %d predictions for %d validation cells", point, len(predicted), len(valY))}
	}

	matrix, err := accuracy.BuildMatrix(valY, predicted)
	if err != nil {
		return Result{Point: point, Err: fmt.Errorf("scoring %s: %w", point, err)}
	}

	return Result{Point: point, Accuracy: matrix.OverallAccuracy(), Matrix: matrix}
}

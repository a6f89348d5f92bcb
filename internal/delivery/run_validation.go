package delivery

import (
	"fmt"

	"github.com/landwatch/landcover-validation-poc/internal/accuracy"
	"github.com/landwatch/landcover-validation-poc/internal/notification"
	"github.com/landwatch/landcover-validation-poc/internal/refmap"
	"github.com/landwatch/landcover-validation-poc/internal/sampling"
	"github.com/landwatch/landcover-validation-poc/internal/search"
)

// ValidationConfig carries the tunable policy of a validation run. MinPoints
// and MaxPoints deliberately over-sample rare classes relative to their true
// prevalence; that stratification bias control comes from the reference
// workflow and is exposed as configuration rather than baked in.
type ValidationConfig struct {
	TotalPoints   int
	MinPoints     int
	MaxPoints     int
	SplitFraction float64
	Seed          int64
	Shortfall     sampling.ShortfallPolicy
	Workers       int
}

// ValidationReport is everything a run exposes to reporting: the allocation,
// the partition sizes per class, the full grid-search result list, the
// selected point and the validation metrics of its model.
type ValidationReport struct {
	Allocation       sampling.Allocation
	Dataset          *sampling.Dataset
	TrainingCounts   map[int]int
	ValidationCounts map[int]int
	Results          []search.Result
	BestIndex        int
	Best             search.Result
	Matrix           *accuracy.Matrix
	Metrics          accuracy.Summary
}

// RunValidation performs the complete validation process: class-balanced
// sampling of the reference cells, stratified train/validation split,
// hyperparameter grid search with the supplied trainer and accuracy scoring
// of the winning model.
func RunValidation(cells []refmap.Cell, trainer search.Trainer, grid []search.Point, cfg ValidationConfig) (*ValidationReport, error) {
	fmt.Println("Starting validation run...")

	hist := refmap.BuildHistogram(cells)

	allocation, err := sampling.Allocate(hist, cfg.TotalPoints, cfg.MinPoints, cfg.MaxPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate samples: %w", err)
	}
	fmt.Printf("Allocated %d sample points across %d classes\n", allocation.Total(), len(allocation))

	sampled, err := sampling.SampleStratified(cells, allocation, cfg.Seed, cfg.Shortfall)
	if err != nil {
		return nil, fmt.Errorf("failed to sample reference map: %w", err)
	}

	dataset, err := sampling.Split(sampled, cfg.SplitFraction, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to split dataset: %w", err)
	}
	fmt.Printf("Split data: %d training cells, %d validation cells\n", len(dataset.Training), len(dataset.Validation))

	trainX, trainY := sampling.Features(dataset.Training)
	valX, valY := sampling.Features(dataset.Validation)

	results, best, err := search.Run(trainer, trainX, trainY, valX, valY, grid, cfg.Workers)
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("Warning: grid point %s failed: %v\n", result.Point, result.Err)
			notification.SendDiscordWarnNotification(fmt.Sprintf("Grid point %s failed: %v", result.Point, result.Err))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("grid search failed: %w", err)
	}

	report := &ValidationReport{
		Allocation:       allocation,
		Dataset:          dataset,
		TrainingCounts:   sampling.CountByClass(dataset.Training),
		ValidationCounts: sampling.CountByClass(dataset.Validation),
		Results:          results,
		BestIndex:        best,
		Best:             results[best],
		Matrix:           results[best].Matrix,
		Metrics:          accuracy.Summarize(results[best].Matrix),
	}

	fmt.Printf("Best grid point: %s (accuracy %.4f)\n", report.Best.Point, report.Best.Accuracy)

	return report, nil
}

// EvaluateModel scores an independently supplied model against labeled
// cells, without any sampling or search.
func EvaluateModel(model search.Model, cells []refmap.Cell) (*accuracy.Matrix, accuracy.Summary, error) {
	matrix := accuracy.NewMatrix()
	if batch, ok := model.(search.BatchModel); ok {
		X, y := sampling.Features(cells)
		predicted, err := batch.PredictBatch(X)
		if err != nil {
			return nil, accuracy.Summary{}, fmt.Errorf("failed to predict cells: %w", err)
		}
		for i := range y {
			matrix.Add(y[i], predicted[i])
		}
		return matrix, accuracy.Summarize(matrix), nil
	}

	for _, cell := range cells {
		predicted, err := model.Predict(cell.FeatureVector())
		if err != nil {
			return nil, accuracy.Summary{}, fmt.Errorf("failed to predict cell (%d,%d): %w", cell.X, cell.Y, err)
		}
		matrix.Add(cell.Class, predicted)
	}
	return matrix, accuracy.Summarize(matrix), nil
}

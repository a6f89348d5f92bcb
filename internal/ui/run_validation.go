package ui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/landwatch/landcover-validation-poc/internal/delivery"
	"github.com/landwatch/landcover-validation-poc/internal/ml"
	"github.com/landwatch/landcover-validation-poc/internal/notification"
	"github.com/landwatch/landcover-validation-poc/internal/properties"
	"github.com/landwatch/landcover-validation-poc/internal/refmap"
	"github.com/landwatch/landcover-validation-poc/internal/sampling"
	"github.com/landwatch/landcover-validation-poc/internal/search"
	"github.com/landwatch/landcover-validation-poc/output"
)

// RunValidation drives a full validation run from user input: dataset
// selection, sampling policy, hyperparameter grid, then the run itself.
func RunValidation() {
	cells, err := loadCells()
	if err != nil {
		PrintError(err.Error())
		return
	}

	cfg, err := readValidationConfig()
	if err != nil {
		PrintError(err.Error())
		return
	}

	grid, err := readGrid()
	if err != nil {
		PrintError(err.Error())
		return
	}

	trainer := ml.NewModelClient(properties.ModelServiceUrl())

	start := time.Now()
	report, err := delivery.RunValidation(cells, trainer, grid, cfg)
	if err != nil {
		PrintError(fmt.Sprintf("Validation run failed: %v", err))
		notification.SendDiscordErrorNotification(err.Error())
		return
	}

	formatted := delivery.FormatReport(report)
	PrintSuccess(fmt.Sprintf("Validation finished in %s", time.Since(start)))
	fmt.Println(formatted)
	fmt.Println(delivery.FormatMatrix(report.Matrix))

	if resultPath, err := CreateResultDirectory(); err == nil {
		if err := delivery.ExportResultsCSV(report, resultPath+"/grid_search.csv"); err != nil {
			PrintWarning(err.Error())
		}
		if err := refmap.WriteCellsCSV(report.Dataset.Training, resultPath+"/training_samples.csv"); err != nil {
			PrintWarning(err.Error())
		}
		if err := refmap.WriteCellsCSV(report.Dataset.Validation, resultPath+"/validation_samples.csv"); err != nil {
			PrintWarning(err.Error())
		}
		output.CreateSamplesGeoJson(report.Dataset.Training, "training", "training_samples")
		output.CreateSamplesGeoJson(report.Dataset.Validation, "validation", "validation_samples")
	}

	notification.SendDiscordSuccessNotification(formatted)
}

func loadCells() ([]refmap.Cell, error) {
	choice, err := ReadInt("Load cells from: 1) labeled CSV dataset 2) reference/feature GeoTIFFs: ", 1, 2)
	if err != nil {
		return nil, err
	}

	if choice == 1 {
		path, err := SelectDataset()
		if err != nil {
			return nil, err
		}
		return refmap.ReadCellsCSV(path)
	}

	classPath := ReadString("Enter the class raster path: ")
	featurePath := ReadString("Enter the feature raster path: ")
	boundaryPath := ReadString("Enter the boundary GeoJSON path (empty for none): ")

	return readRasterCells(classPath, featurePath, boundaryPath)
}

func readValidationConfig() (delivery.ValidationConfig, error) {
	totalPoints, err := ReadPositiveInt("Enter the total number of sample points: ")
	if err != nil {
		return delivery.ValidationConfig{}, err
	}
	minPoints, err := ReadPositiveInt("Enter the minimum points per class: ")
	if err != nil {
		return delivery.ValidationConfig{}, err
	}
	maxPoints, err := ReadPositiveInt("Enter the maximum points per class: ")
	if err != nil {
		return delivery.ValidationConfig{}, err
	}
	splitFraction, err := ReadFraction("Enter the training split fraction (0-1): ")
	if err != nil {
		return delivery.ValidationConfig{}, err
	}
	seed := ReadSeed("Enter the random seed (empty for 42): ", 42)

	policy := sampling.ClampToAvailable
	choice, err := ReadInt("On class shortfall: 1) clamp to available 2) fail the run: ", 1, 2)
	if err != nil {
		return delivery.ValidationConfig{}, err
	}
	if choice == 2 {
		policy = sampling.FailOnShortfall
	}

	return delivery.ValidationConfig{
		TotalPoints:   totalPoints,
		MinPoints:     minPoints,
		MaxPoints:     maxPoints,
		SplitFraction: splitFraction,
		Seed:          seed,
		Shortfall:     policy,
		Workers:       runtime.NumCPU(),
	}, nil
}

func readGrid() ([]search.Point, error) {
	trees, err := ReadIntList("Enter tree counts (comma separated, e.g. 50,100,200): ")
	if err != nil {
		return nil, err
	}
	bagFractions, err := ReadFractionList("Enter bag fractions (comma separated, e.g. 0.5,0.7,0.9): ")
	if err != nil {
		return nil, err
	}
	return search.Grid(trees, bagFractions), nil
}

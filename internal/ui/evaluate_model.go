package ui

import (
	"fmt"

	"github.com/landwatch/landcover-validation-poc/internal/delivery"
	"github.com/landwatch/landcover-validation-poc/internal/ml"
	"github.com/landwatch/landcover-validation-poc/internal/properties"
)

// EvaluateModel scores an already trained model against a labeled dataset,
// without re-sampling or re-training. The model id is the one the service
// reported when the model was trained.
func EvaluateModel() {
	cells, err := loadCells()
	if err != nil {
		PrintError(err.Error())
		return
	}

	modelID := ReadString("Enter the trained model id: ")
	if modelID == "" {
		PrintError("model id cannot be empty")
		return
	}

	client := ml.NewModelClient(properties.ModelServiceUrl())
	matrix, metrics, err := delivery.EvaluateModel(client.Model(modelID), cells)
	if err != nil {
		PrintError(fmt.Sprintf("Evaluation failed: %v", err))
		return
	}

	PrintSuccess(fmt.Sprintf("Scored model %s against %d cells", modelID, matrix.Total()))
	fmt.Println(delivery.FormatMetrics(matrix, metrics))
	fmt.Println(delivery.FormatMatrix(matrix))
}

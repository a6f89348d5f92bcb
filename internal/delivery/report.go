package delivery

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/landwatch/landcover-validation-poc/internal/accuracy"
	"github.com/landwatch/landcover-validation-poc/internal/utils"
)

// FormatReport formats a validation report for the terminal and Discord.
func FormatReport(report *ValidationReport) string {
	var sb strings.Builder

	sb.WriteString("**Sample allocation:**\n")
	for _, class := range utils.GetSortedClassKeys(report.Allocation, true) {
		sb.WriteString(fmt.Sprintf("  • class %d: %d allocated, %d training, %d validation\n",
			class, report.Allocation[class], report.TrainingCounts[class], report.ValidationCounts[class]))
	}

	sb.WriteString("**Grid search:**\n")
	for i, result := range report.Results {
		marker := " "
		if i == report.BestIndex {
			marker = "*"
		}
		if result.Err != nil {
			sb.WriteString(fmt.Sprintf("  %s %s: failed (%v)\n", marker, result.Point, result.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s %s: accuracy %.4f\n", marker, result.Point, result.Accuracy))
	}

	sb.WriteString(FormatMetrics(report.Matrix, report.Metrics))

	return sb.String()
}

// FormatMetrics renders a scored matrix's summary metrics, shared between the
// grid-search report and standalone model evaluation.
func FormatMetrics(matrix *accuracy.Matrix, metrics accuracy.Summary) string {
	var sb strings.Builder

	sb.WriteString("**Validation metrics:**\n")
	sb.WriteString(fmt.Sprintf("- Overall accuracy: %.4f\n", metrics.OverallAccuracy))
	if metrics.KappaDefined {
		sb.WriteString(fmt.Sprintf("- Cohen's kappa: %.4f\n", metrics.Kappa))
	} else {
		sb.WriteString("- Cohen's kappa: undefined (degenerate matrix)\n")
	}
	for _, class := range matrix.Classes() {
		sb.WriteString(fmt.Sprintf("  • class %d: producer's %s, consumer's %s\n",
			class,
			formatAccuracy(metrics.ProducersAccuracy[class]),
			formatAccuracy(metrics.ConsumersAccuracy[class])))
	}

	return sb.String()
}

// FormatMatrix renders a confusion matrix with reference classes as rows and
// predicted classes as columns.
func FormatMatrix(matrix *accuracy.Matrix) string {
	var sb strings.Builder
	classes := matrix.Classes()

	sb.WriteString("ref\\pred")
	for _, predicted := range classes {
		sb.WriteString(fmt.Sprintf("\t%d", predicted))
	}
	sb.WriteString("\n")

	for _, reference := range classes {
		sb.WriteString(fmt.Sprintf("%d", reference))
		for _, predicted := range classes {
			sb.WriteString(fmt.Sprintf("\t%d", matrix.Count(reference, predicted)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatAccuracy(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}

type gridResultRow struct {
	Trees       int     `csv:"trees"`
	BagFraction float64 `csv:"bag_fraction"`
	Accuracy    float64 `csv:"accuracy"`
	Failed      bool    `csv:"failed"`
	Error       string  `csv:"error"`
}

// ExportResultsCSV writes the full grid-search result list for inspection
// and charting, failed points included.
func ExportResultsCSV(report *ValidationReport, path string) error {
	rows := make([]gridResultRow, 0, len(report.Results))
	for _, result := range report.Results {
		row := gridResultRow{
			Trees:       result.Point.Trees,
			BagFraction: result.Point.BagFraction,
			Accuracy:    result.Accuracy,
		}
		if result.Err != nil {
			row.Failed = true
			row.Error = result.Err.Error()
			row.Accuracy = math.NaN()
		}
		rows = append(rows, row)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating results file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing results CSV: %w", err)
	}

	fmt.Printf("Grid search results saved to: %s\n", path)
	return nil
}

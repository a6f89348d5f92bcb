package ui

import (
	"fmt"

	"github.com/landwatch/landcover-validation-poc/internal/refmap"
	"github.com/landwatch/landcover-validation-poc/internal/utils"
)

// InspectDataset prints the class histogram of a labeled-cell dataset, the
// first thing to sanity-check before tuning the sampling bounds.
func InspectDataset() {
	path, err := SelectDataset()
	if err != nil {
		PrintError(err.Error())
		return
	}

	cells, err := refmap.ReadCellsCSV(path)
	if err != nil {
		PrintError(err.Error())
		return
	}

	hist := refmap.BuildHistogram(cells)
	total := hist.Total()
	if total == 0 {
		PrintWarning("Dataset contains no classified cells")
		return
	}

	fmt.Printf("%d cells across %d classes:\n", total, len(hist))
	for _, class := range utils.GetSortedClassKeys(hist, true) {
		count := hist[class]
		fmt.Printf("  class %d: %d cells (%.1f%%)\n", class, count, float64(count)/float64(total)*100)
	}
}

package ui

import (
	"fmt"

	"github.com/landwatch/landcover-validation-poc/internal/refmap"
	"github.com/landwatch/landcover-validation-poc/internal/smooth"
	"github.com/landwatch/landcover-validation-poc/output"
)

// SmoothRaster runs the patch smoother over a classified raster and writes
// the result next to the run's other artifacts.
func SmoothRaster() {
	rasterPath := ReadString("Enter the classified raster path: ")

	labels, width, height, err := refmap.ReadLabelGrid(rasterPath)
	if err != nil {
		PrintError(err.Error())
		return
	}

	raster, err := smooth.NewRaster(width, height, labels)
	if err != nil {
		PrintError(err.Error())
		return
	}

	minPatchSize, err := ReadPositiveInt("Enter the minimum patch size (cells): ")
	if err != nil {
		PrintError(err.Error())
		return
	}
	radius, err := ReadPositiveInt("Enter the majority filter radius: ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	conn := smooth.Connectivity8
	choice, err := ReadInt("Connectivity: 1) 4-neighbor 2) 8-neighbor: ", 1, 2)
	if err != nil {
		PrintError(err.Error())
		return
	}
	if choice == 1 {
		conn = smooth.Connectivity4
	}

	smoothed, err := smooth.Smooth(raster, minPatchSize, radius, conn)
	if err != nil {
		PrintError(err.Error())
		return
	}

	if _, err := CreateResultDirectory(); err != nil {
		PrintError(err.Error())
		return
	}
	outputPath, err := output.CreateSmoothedRaster(smoothed, rasterPath, "smoothed")
	if err != nil {
		PrintError(err.Error())
		return
	}
	if err := output.CreateSmoothedImage(smoothed, outputPath+".preview"); err != nil {
		PrintWarning(err.Error())
	}

	changed := 0
	for i := range labels {
		if labels[i] != smoothed.Labels[i] {
			changed++
		}
	}
	PrintSuccess(fmt.Sprintf("Smoothing replaced %d of %d cells", changed, len(labels)))
}

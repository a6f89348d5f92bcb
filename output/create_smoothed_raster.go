package output

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"strings"

	"github.com/airbusgeo/godal"
	"github.com/landwatch/landcover-validation-poc/internal/properties"
	"github.com/landwatch/landcover-validation-poc/internal/smooth"
)

// CreateSmoothedRaster writes the smoothed classification as a GeoTIFF,
// copying georeferencing from the source classified raster.
func CreateSmoothedRaster(raster *smooth.Raster, sourcePath, outputName string) (string, error) {
	outputPath := fmt.Sprintf("%s/data/result/%s.tif", properties.RootPath(), outputName)

	godal.RegisterInternalDrivers()

	source, err := godal.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source raster: %w", err)
	}
	defer source.Close()

	ds, err := godal.Create(godal.GTiff, outputPath, 1, godal.Int32, raster.Width, raster.Height)
	if err != nil {
		return "", fmt.Errorf("failed to create output raster: %w", err)
	}
	defer ds.Close()

	if geoTransform, err := source.GeoTransform(); err == nil {
		if err := ds.SetGeoTransform(geoTransform); err != nil {
			return "", fmt.Errorf("failed to set geo transform: %w", err)
		}
	}
	if sr := source.SpatialRef(); sr != nil {
		defer sr.Close()
		if err := ds.SetSpatialRef(sr); err != nil {
			return "", fmt.Errorf("failed to set spatial reference: %w", err)
		}
	}

	data := make([]int32, len(raster.Labels))
	for i, label := range raster.Labels {
		data[i] = int32(label)
	}
	if err := ds.Bands()[0].Write(0, 0, data, raster.Width, raster.Height); err != nil {
		return "", fmt.Errorf("failed to write raster data: %w", err)
	}

	fmt.Println("Smoothed raster created successfully at", outputPath)
	return outputPath, nil
}

// CreateSmoothedImage renders the smoothed classification as a JPEG preview
// using the class color map.
func CreateSmoothedImage(raster *smooth.Raster, outputImagePath string) error {
	if !strings.Contains(outputImagePath, ".jpeg") {
		outputImagePath += ".jpeg"
	}

	newImage := image.NewRGBA(image.Rect(0, 0, raster.Width, raster.Height))
	for y := 0; y < raster.Height; y++ {
		for x := 0; x < raster.Width; x++ {
			c := properties.ColorMap[raster.At(x, y)]
			newImage.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	outputFile, err := os.Create(outputImagePath)
	if err != nil {
		return fmt.Errorf("error creating image file: %w", err)
	}
	defer outputFile.Close()

	if err := jpeg.Encode(outputFile, newImage, nil); err != nil {
		return fmt.Errorf("error encoding image: %w", err)
	}

	fmt.Println("Smoothed preview created successfully at", outputImagePath)
	return nil
}

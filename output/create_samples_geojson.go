package output

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/landwatch/landcover-validation-poc/internal/properties"
	"github.com/landwatch/landcover-validation-poc/internal/refmap"
)

// CreateSamplesGeoJson exports sampled cells as GeoJSON points so the chosen
// training and validation locations can be inspected on a map. partition is
// recorded on each feature ("training" or "validation").
func CreateSamplesGeoJson(cells []refmap.Cell, partition, outputGeojsonPath string) string {
	outputPath := fmt.Sprintf("%s/data/result/%s.geojson", properties.RootPath(), outputGeojsonPath)

	fc := geojson.NewFeatureCollection()
	for _, cell := range cells {
		feature := geojson.NewFeature(orb.Point{cell.Longitude, cell.Latitude})
		feature.Properties = geojson.Properties{
			"x":         cell.X,
			"y":         cell.Y,
			"class":     cell.Class,
			"partition": partition,
		}
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		fmt.Printf("Error encoding GeoJSON: %v\n", err)
		return ""
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Printf("Error creating GeoJSON file: %v\n", err)
		return ""
	}

	fmt.Println("GeoJSON file created successfully at", outputPath)
	return outputPath
}

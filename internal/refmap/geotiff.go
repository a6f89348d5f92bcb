package refmap

import (
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/schollz/progressbar/v3"
)

// ReadCells streams every classified pixel of a reference raster into a Cell
// slice. classPath must point to a single-band GeoTIFF of class labels and
// featurePath to a four-band GeoTIFF holding the composite indices in
// FeatureNames order. A non-nil boundary restricts the read to pixels whose
// geographic center falls inside it.
func ReadCells(classPath, featurePath string, boundary orb.MultiPolygon) ([]Cell, error) {
	godal.RegisterInternalDrivers()

	classDS, err := godal.Open(classPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open class raster: %w", err)
	}
	defer classDS.Close()

	featureDS, err := godal.Open(featurePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open feature raster: %w", err)
	}
	defer featureDS.Close()

	width := classDS.Structure().SizeX
	height := classDS.Structure().SizeY
	if featureDS.Structure().SizeX != width || featureDS.Structure().SizeY != height {
		return nil, fmt.Errorf("class raster is %dx%d but feature raster is %dx%d",
			width, height, featureDS.Structure().SizeX, featureDS.Structure().SizeY)
	}
	if len(featureDS.Bands()) < len(FeatureNames()) {
		return nil, fmt.Errorf("feature raster has %d bands, need %d", len(featureDS.Bands()), len(FeatureNames()))
	}

	labels := make([]float64, width*height)
	if err := classDS.Bands()[0].Read(0, 0, labels, width, height); err != nil {
		return nil, fmt.Errorf("failed to read class band: %w", err)
	}

	bands := make([][]float64, len(FeatureNames()))
	for i := range bands {
		bands[i] = make([]float64, width*height)
		if err := featureDS.Bands()[i].Read(0, 0, bands[i], width, height); err != nil {
			return nil, fmt.Errorf("failed to read feature band %d: %w", i, err)
		}
	}

	geoTransform, err := classDS.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("failed to get GeoTransform: %w", err)
	}

	progressBar := progressbar.Default(int64(height), "Reading reference map")

	var cells []Cell
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			lon := geoTransform[0] + geoTransform[1]*(float64(x)+0.5) + geoTransform[2]*(float64(y)+0.5)
			lat := geoTransform[3] + geoTransform[4]*(float64(x)+0.5) + geoTransform[5]*(float64(y)+0.5)

			if boundary != nil && !planar.MultiPolygonContains(boundary, orb.Point{lon, lat}) {
				continue
			}

			cells = append(cells, Cell{
				X:         x,
				Y:         y,
				Latitude:  lat,
				Longitude: lon,
				Class:     int(labels[i]),
				NDVI:      bands[0][i],
				NDWI:      bands[1][i],
				NBR:       bands[2][i],
				EVI:       bands[3][i],
			})
		}
		progressBar.Add(1)
	}
	fmt.Println()

	return cells, nil
}

// ReadLabelGrid reads a single-band classified raster into a row-major label
// grid, for the patch smoother.
func ReadLabelGrid(path string) ([]int, int, int, error) {
	godal.RegisterInternalDrivers()

	ds, err := godal.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open classified raster: %w", err)
	}
	defer ds.Close()

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY

	data := make([]float64, width*height)
	if err := ds.Bands()[0].Read(0, 0, data, width, height); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read raster data: %w", err)
	}

	labels := make([]int, len(data))
	for i, v := range data {
		labels[i] = int(v)
	}

	return labels, width, height, nil
}

// LoadBoundary reads the first polygonal feature of a GeoJSON file, typically
// the study-area outline exported alongside the reference map.
func LoadBoundary(path string) (orb.MultiPolygon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading boundary file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling boundary GeoJSON: %w", err)
	}

	for _, feat := range fc.Features {
		switch geom := feat.Geometry.(type) {
		case orb.Polygon:
			return orb.MultiPolygon{geom}, nil
		case orb.MultiPolygon:
			return geom, nil
		}
	}

	return nil, fmt.Errorf("no polygonal feature found in %s", path)
}

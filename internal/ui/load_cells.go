package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/landwatch/landcover-validation-poc/internal/cache"
	"github.com/landwatch/landcover-validation-poc/internal/properties"
	"github.com/landwatch/landcover-validation-poc/internal/refmap"
	"github.com/paulmach/orb"
)

// readRasterCells extracts labeled cells from the reference and feature
// rasters, caching the extraction keyed on paths, modification times and the
// boundary file so repeated runs skip the full-raster read.
func readRasterCells(classPath, featurePath, boundaryPath string) ([]refmap.Cell, error) {
	cellCache := cache.NewFileCache[[]refmap.Cell](filepath.Join(properties.RootPath(), "data", "refmap_cache"))
	key := cellCache.GenerateKey(classPath, featurePath, boundaryPath, modTime(classPath), modTime(featurePath), modTime(boundaryPath))

	if cells, ok := cellCache.Get(key); ok {
		fmt.Printf("Using cached extraction with %d cells\n", len(cells))
		return cells, nil
	}

	var boundary orb.MultiPolygon
	if boundaryPath != "" {
		var err error
		boundary, err = refmap.LoadBoundary(boundaryPath)
		if err != nil {
			return nil, err
		}
	}

	cells, err := refmap.ReadCells(classPath, featurePath, boundary)
	if err != nil {
		return nil, err
	}

	if err := cellCache.Set(key, cells); err != nil {
		PrintWarning(fmt.Sprintf("Failed to cache extraction: %v", err))
	}

	return cells, nil
}

func modTime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}

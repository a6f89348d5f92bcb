package refmap

// UnclassifiedLabel is the designated out-of-interest class value. Cells
// carrying it are excluded from histograms, sampling and reporting.
const UnclassifiedLabel = 0

// Cell is a single labeled location of the reference map: a raster position,
// its geographic coordinates, the reference class label and the composite
// spectral indices used as model features. Immutable once sampled.
type Cell struct {
	X         int     `csv:"x"`
	Y         int     `csv:"y"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
	Class     int     `csv:"class"`
	NDVI      float64 `csv:"ndvi"`
	NDWI      float64 `csv:"ndwi"`
	NBR       float64 `csv:"nbr"`
	EVI       float64 `csv:"evi"`
}

func (c Cell) Key() [2]int {
	return [2]int{c.X, c.Y}
}

// FeatureVector returns the cell's features in the fixed order of
// FeatureNames.
func (c Cell) FeatureVector() []float64 {
	return []float64{c.NDVI, c.NDWI, c.NBR, c.EVI}
}

func FeatureNames() []string {
	return []string{"ndvi", "ndwi", "nbr", "evi"}
}

// ClassHistogram maps a class label to its observed cell count. Built once
// per reference map and read-only afterward.
type ClassHistogram map[int]int

func (h ClassHistogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// BuildHistogram counts cells per class, skipping the unclassified label.
func BuildHistogram(cells []Cell) ClassHistogram {
	hist := make(ClassHistogram)
	for _, cell := range cells {
		if cell.Class == UnclassifiedLabel {
			continue
		}
		hist[cell.Class]++
	}
	return hist
}

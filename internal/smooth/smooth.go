package smooth

import "fmt"

// Smooth removes small classification patches: cells whose connected
// same-label patch is smaller than minPatchSize take the majority label of
// their radius-neighborhood, every other cell keeps its label. Sizing,
// filtering and the conditional merge are each a single pass over the input
// raster; the filter is never re-applied to its own output, so a raster with
// no patch below the threshold comes back unchanged.
func Smooth(r *Raster, minPatchSize, radius int, conn Connectivity) (*Raster, error) {
	if minPatchSize < 1 {
		return nil, fmt.Errorf("minimum patch size must be positive, got %d", minPatchSize)
	}

	sizes, err := ComponentSizes(r, conn)
	if err != nil {
		return nil, err
	}

	majority, err := MajorityFilter(r, radius)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(r.Labels))
	for i, label := range r.Labels {
		if sizes[i] < minPatchSize {
			labels[i] = majority[i]
		} else {
			labels[i] = label
		}
	}

	return NewRaster(r.Width, r.Height, labels)
}

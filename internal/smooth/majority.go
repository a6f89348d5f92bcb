package smooth

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MajorityFilter computes, for every cell, the most frequent label inside the
// square window of the given radius centered on it (the cell itself
// included). Ties go to the lowest label value. Rows are processed in bands,
// one goroutine per CPU; the input raster is read-only and each band writes
// a disjoint range of the output, so no locking is needed.
func MajorityFilter(r *Raster, radius int) ([]int, error) {
	if radius < 1 {
		return nil, fmt.Errorf("majority filter radius must be positive, got %d", radius)
	}

	out := make([]int, len(r.Labels))

	var g errgroup.Group
	workers := runtime.NumCPU()
	band := (r.Height + workers - 1) / workers
	for start := 0; start < r.Height; start += band {
		start := start
		end := start + band
		if end > r.Height {
			end = r.Height
		}
		g.Go(func() error {
			counts := make(map[int]int)
			for y := start; y < end; y++ {
				for x := 0; x < r.Width; x++ {
					out[r.index(x, y)] = windowMajority(r, x, y, radius, counts)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func windowMajority(r *Raster, x, y, radius int, counts map[int]int) int {
	clear(counts)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if !r.inBounds(nx, ny) {
				continue
			}
			counts[r.At(nx, ny)]++
		}
	}

	best := r.At(x, y)
	bestCount := 0
	for label, count := range counts {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}
	return best
}

package sampling

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/landwatch/landcover-validation-poc/internal/refmap"
)

// ShortfallPolicy decides what happens when a class has fewer cells than its
// allocation asks for.
type ShortfallPolicy int

const (
	// ClampToAvailable samples every cell the class has and continues. This
	// is the default: rare classes stay in the run at reduced strength.
	ClampToAvailable ShortfallPolicy = iota
	// FailOnShortfall aborts with ErrInsufficientSamples naming the class.
	FailOnShortfall
)

// SampleStratified draws, per class, allocation[class] distinct cells
// uniformly at random without replacement. Each class uses its own generator
// seeded from the run seed offset by the class label, so a class's draw
// depends only on the seed and the input ordering of its own cells.
// Unclassified cells are never candidates.
func SampleStratified(cells []refmap.Cell, allocation Allocation, seed int64, policy ShortfallPolicy) ([]refmap.Cell, error) {
	byClass := make(map[int][]refmap.Cell)
	for _, cell := range cells {
		if cell.Class == refmap.UnclassifiedLabel {
			continue
		}
		if _, wanted := allocation[cell.Class]; !wanted {
			continue
		}
		byClass[cell.Class] = append(byClass[cell.Class], cell)
	}

	classes := make([]int, 0, len(allocation))
	for class := range allocation {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	var sampled []refmap.Cell
	for _, class := range classes {
		wanted := allocation[class]
		candidates := byClass[class]

		if len(candidates) < wanted {
			if policy == FailOnShortfall {
				return nil, fmt.Errorf("%w: class %d has %d cells, allocation wants %d", ErrInsufficientSamples, class, len(candidates), wanted)
			}
			fmt.Printf("Class %d has only %d cells for an allocation of %d, clamping\n", class, len(candidates), wanted)
			wanted = len(candidates)
		}

		rng := rand.New(rand.NewSource(seed + int64(class)))
		sampled = append(sampled, drawWithoutReplacement(candidates, wanted, rng)...)
	}

	return sampled, nil
}

// drawWithoutReplacement performs a partial Fisher-Yates shuffle: only the
// first n positions are settled, so class populations of millions of cells
// cost O(n) swaps.
func drawWithoutReplacement(candidates []refmap.Cell, n int, rng *rand.Rand) []refmap.Cell {
	pool := make([]refmap.Cell, len(candidates))
	copy(pool, candidates)

	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}

// CountByClass reports the per-class size of a cell collection, for the
// partition summaries exposed to reporting.
func CountByClass(cells []refmap.Cell) map[int]int {
	counts := make(map[int]int)
	for _, cell := range cells {
		counts[cell.Class]++
	}
	return counts
}

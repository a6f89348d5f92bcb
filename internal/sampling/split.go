package sampling

import (
	"fmt"
	"math/rand"

	"github.com/landwatch/landcover-validation-poc/internal/refmap"
)

// Dataset holds the disjoint training and validation partitions of the
// sampled cells. Every sampled cell belongs to exactly one partition.
type Dataset struct {
	Training   []refmap.Cell
	Validation []refmap.Cell
}

// Split assigns each sampled cell to training or validation. Independently
// per class, each cell gets a uniform draw in [0,1); it trains when the draw
// is below splitFraction. This is probabilistic stratification: class ratios
// converge to splitFraction but no exact count is guaranteed, and a class
// with a single cell may land entirely in one partition.
//
// Per-class generators are seeded from the run seed offset by the class
// label, so the assignment is deterministic given the seed and the input
// ordering, and one class's draw never disturbs another's.
func Split(cells []refmap.Cell, splitFraction float64, seed int64) (*Dataset, error) {
	if splitFraction <= 0 || splitFraction >= 1 {
		return nil, fmt.Errorf("%w: splitFraction must be in (0,1), got %g", ErrInvalidConfiguration, splitFraction)
	}

	rngs := make(map[int]*rand.Rand)
	ds := &Dataset{}
	for _, cell := range cells {
		rng, ok := rngs[cell.Class]
		if !ok {
			rng = rand.New(rand.NewSource(seed + int64(cell.Class)))
			rngs[cell.Class] = rng
		}
		if rng.Float64() < splitFraction {
			ds.Training = append(ds.Training, cell)
		} else {
			ds.Validation = append(ds.Validation, cell)
		}
	}

	return ds, nil
}

// Features extracts the feature matrix and label vector of a partition in
// partition order, ready for the trainer.
func Features(cells []refmap.Cell) ([][]float64, []int) {
	X := make([][]float64, len(cells))
	y := make([]int, len(cells))
	for i, cell := range cells {
		X[i] = cell.FeatureVector()
		y[i] = cell.Class
	}
	return X, y
}

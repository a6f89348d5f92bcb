package sampling

import (
	"errors"
	"fmt"
	"math"

	"github.com/landwatch/landcover-validation-poc/internal/refmap"
)

var (
	ErrInvalidConfiguration = errors.New("invalid sampling configuration")
	ErrInsufficientSamples  = errors.New("insufficient samples for class")
)

// Allocation maps a class label to its target sample count. Every value lies
// within [minPoints, maxPoints]; the total may exceed the nominal target when
// clamping raises rare-class counts.
type Allocation map[int]int

func (a Allocation) Total() int {
	total := 0
	for _, count := range a {
		total += count
	}
	return total
}

// Allocate converts a class histogram into per-class target sample counts.
// Each class gets round(count/total * numTotalPoints), rounded half away
// from zero, clamped to [minPoints, maxPoints]. Classes with zero observed
// cells are skipped rather than forced to minPoints: there is nothing to
// sample for them, and forcing the floor would make the sampler fail by
// construction.
func Allocate(hist refmap.ClassHistogram, numTotalPoints, minPoints, maxPoints int) (Allocation, error) {
	if numTotalPoints <= 0 {
		return nil, fmt.Errorf("%w: numTotalPoints must be positive, got %d", ErrInvalidConfiguration, numTotalPoints)
	}
	if minPoints <= 0 || minPoints > maxPoints {
		return nil, fmt.Errorf("%w: bounds must satisfy 0 < minPoints <= maxPoints, got [%d, %d]", ErrInvalidConfiguration, minPoints, maxPoints)
	}

	total := hist.Total()
	if total == 0 {
		return nil, fmt.Errorf("%w: empty class histogram", ErrInvalidConfiguration)
	}

	allocation := make(Allocation, len(hist))
	for class, count := range hist {
		if count == 0 {
			continue
		}
		proportion := float64(count) / float64(total)
		// math.Round rounds half away from zero, which keeps repeated runs
		// bit-identical across platforms.
		rawPoints := int(math.Round(proportion * float64(numTotalPoints)))
		allocation[class] = clamp(rawPoints, minPoints, maxPoints)
	}

	return allocation, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

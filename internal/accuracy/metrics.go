package accuracy

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDegenerateMatrix marks a matrix whose chance agreement is total, which
// leaves Cohen's kappa with a zero denominator.
var ErrDegenerateMatrix = errors.New("degenerate confusion matrix: kappa undefined")

// OverallAccuracy is trace(M) over the grand total, 0 for an empty matrix.
func (m *Matrix) OverallAccuracy() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.Diagonal()) / float64(m.total)
}

// ProducersAccuracy reports per reference class the fraction of its cells
// that were predicted correctly (recall). Classes whose reference row is
// empty get NaN rather than being dropped from the report.
func (m *Matrix) ProducersAccuracy() map[int]float64 {
	out := make(map[int]float64, len(m.seen))
	for _, class := range m.Classes() {
		rowSum := m.RowSum(class)
		if rowSum == 0 {
			out[class] = math.NaN()
			continue
		}
		out[class] = float64(m.Count(class, class)) / float64(rowSum)
	}
	return out
}

// ConsumersAccuracy reports per predicted class the fraction of its
// predictions that were correct (precision), NaN when the class was never
// predicted.
func (m *Matrix) ConsumersAccuracy() map[int]float64 {
	out := make(map[int]float64, len(m.seen))
	for _, class := range m.Classes() {
		colSum := m.ColSum(class)
		if colSum == 0 {
			out[class] = math.NaN()
			continue
		}
		out[class] = float64(m.Count(class, class)) / float64(colSum)
	}
	return out
}

// Kappa is Cohen's kappa: observed agreement corrected for the agreement
// expected by chance from the row and column marginals. Returns
// ErrDegenerateMatrix when the expected agreement is 1.
func (m *Matrix) Kappa() (float64, error) {
	if m.total == 0 {
		return 0, ErrDegenerateMatrix
	}

	classes := m.Classes()
	rowSums := make([]float64, len(classes))
	colSums := make([]float64, len(classes))
	for i, class := range classes {
		rowSums[i] = float64(m.RowSum(class))
		colSums[i] = float64(m.ColSum(class))
	}

	total := float64(m.total)
	expected := floats.Dot(rowSums, colSums) / (total * total)
	if expected == 1 {
		return 0, ErrDegenerateMatrix
	}

	return (m.OverallAccuracy() - expected) / (1 - expected), nil
}

// Summary carries every metric derivable from a confusion matrix. Metrics
// that cannot be computed are reported as NaN with KappaDefined false for
// the kappa case; no class is ever dropped.
type Summary struct {
	OverallAccuracy   float64
	ProducersAccuracy map[int]float64
	ConsumersAccuracy map[int]float64
	Kappa             float64
	KappaDefined      bool
}

func Summarize(m *Matrix) Summary {
	s := Summary{
		OverallAccuracy:   m.OverallAccuracy(),
		ProducersAccuracy: m.ProducersAccuracy(),
		ConsumersAccuracy: m.ConsumersAccuracy(),
	}
	kappa, err := m.Kappa()
	if err != nil {
		s.Kappa = math.NaN()
	} else {
		s.Kappa = kappa
		s.KappaDefined = true
	}
	return s
}

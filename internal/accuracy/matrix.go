package accuracy

import (
	"fmt"
	"sort"
)

// Matrix is a confusion matrix: rows are reference (observed) classes,
// columns are predicted classes. The class set is the union of labels seen
// on either axis. Instances are built fresh per evaluation and discarded
// after metrics are extracted.
type Matrix struct {
	counts map[int]map[int]int
	seen   map[int]bool
	total  int
}

func NewMatrix() *Matrix {
	return &Matrix{
		counts: make(map[int]map[int]int),
		seen:   make(map[int]bool),
	}
}

// BuildMatrix tallies paired reference and predicted labels.
func BuildMatrix(reference, predicted []int) (*Matrix, error) {
	if len(reference) != len(predicted) {
		return nil, fmt.Errorf("reference has %d labels but predicted has %d", len(reference), len(predicted))
	}
	m := NewMatrix()
	for i := range reference {
		m.Add(reference[i], predicted[i])
	}
	return m, nil
}

func (m *Matrix) Add(reference, predicted int) {
	row, ok := m.counts[reference]
	if !ok {
		row = make(map[int]int)
		m.counts[reference] = row
	}
	row[predicted]++
	m.seen[reference] = true
	m.seen[predicted] = true
	m.total++
}

func (m *Matrix) Count(reference, predicted int) int {
	return m.counts[reference][predicted]
}

// Classes returns the sorted union of reference and predicted labels.
func (m *Matrix) Classes() []int {
	classes := make([]int, 0, len(m.seen))
	for class := range m.seen {
		classes = append(classes, class)
	}
	sort.Ints(classes)
	return classes
}

func (m *Matrix) Total() int {
	return m.total
}

func (m *Matrix) RowSum(reference int) int {
	sum := 0
	for _, count := range m.counts[reference] {
		sum += count
	}
	return sum
}

func (m *Matrix) ColSum(predicted int) int {
	sum := 0
	for _, row := range m.counts {
		sum += row[predicted]
	}
	return sum
}

func (m *Matrix) Diagonal() int {
	sum := 0
	for class, row := range m.counts {
		sum += row[class]
	}
	return sum
}

package refmap

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// ReadCellsCSV reads a labeled-cell dataset previously exported by
// WriteCellsCSV (or produced by the dataset tooling).
func ReadCellsCSV(path string) ([]Cell, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	var cells []Cell
	if err := gocsv.UnmarshalFile(file, &cells); err != nil {
		return nil, fmt.Errorf("error unmarshalling CSV: %w", err)
	}

	return cells, nil
}

func WriteCellsCSV(cells []Cell, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&cells, file); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}

	return nil
}

package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/landwatch/landcover-validation-poc/internal/properties"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a string from stdin with trimming
func ReadString(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	PrintInfo(prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadInt reads an integer from stdin with validation
func ReadInt(prompt string, min, max int) (int, error) {
	PrintInfo(prompt)
	var input string
	fmt.Scanln(&input)
	input = strings.TrimSpace(input)

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %d and %d", min, max)
	}

	return value, nil
}

// ReadPositiveInt reads a positive integer from stdin
func ReadPositiveInt(prompt string) (int, error) {
	PrintInfo(prompt)
	var input string
	fmt.Scanln(&input)
	input = strings.TrimSpace(input)

	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid number: %s. Please enter a positive integer", input)
	}

	return value, nil
}

// ReadFraction reads a number in the open interval (0,1) from stdin
func ReadFraction(prompt string) (float64, error) {
	PrintInfo(prompt)
	var input string
	fmt.Scanln(&input)
	input = strings.TrimSpace(input)

	value, err := strconv.ParseFloat(input, 64)
	if err != nil || value <= 0 || value >= 1 {
		return 0, fmt.Errorf("invalid fraction: %s. Please enter a value between 0 and 1", input)
	}

	return value, nil
}

// ReadSeed reads the random seed, defaulting when left empty
func ReadSeed(prompt string, fallback int64) int64 {
	input := ReadString(prompt)
	if input == "" {
		return fallback
	}
	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		PrintWarning(fmt.Sprintf("Invalid seed %q, using %d", input, fallback))
		return fallback
	}
	return value
}

// ReadIntList reads a comma-separated list of positive integers
func ReadIntList(prompt string) ([]int, error) {
	input := ReadString(prompt)
	var values []int
	for _, part := range strings.Split(input, ",") {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("invalid list entry: %s", part)
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("list cannot be empty")
	}
	return values, nil
}

// ReadFractionList reads a comma-separated list of fractions in (0,1]
func ReadFractionList(prompt string) ([]float64, error) {
	input := ReadString(prompt)
	var values []float64
	for _, part := range strings.Split(input, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || value <= 0 || value > 1 {
			return nil, fmt.Errorf("invalid list entry: %s", part)
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("list cannot be empty")
	}
	return values, nil
}

// SelectDataset displays available labeled-cell datasets and returns the
// selected one
func SelectDataset() (string, error) {
	datasetFolderPath := fmt.Sprintf("%s/data/refmap/", properties.RootPath())

	datasetFiles, err := os.ReadDir(datasetFolderPath)
	if err != nil {
		return "", fmt.Errorf("error reading refmap folder: %s", err.Error())
	}

	if len(datasetFiles) == 0 {
		return "", fmt.Errorf("no datasets found in the refmap folder")
	}

	fmt.Printf("%s\nAvailable datasets:%s\n", ColorGreen, ColorReset)
	for i, file := range datasetFiles {
		fmt.Printf("%s%d. %s%s\n", ColorGreen, i+1, file.Name(), ColorReset)
	}

	choice, err := ReadInt("Enter the number of the dataset you want to use: ", 1, len(datasetFiles))
	if err != nil {
		return "", err
	}

	selected := datasetFiles[choice-1].Name()
	fmt.Printf("%sYou selected the dataset: %s%s\n", ColorGreen, selected, ColorReset)

	return datasetFolderPath + selected, nil
}

// CreateResultDirectory creates the result directory structure
func CreateResultDirectory() (string, error) {
	resultPath := fmt.Sprintf("%s/data/result", properties.RootPath())
	err := os.MkdirAll(resultPath, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}
	return resultPath, nil
}

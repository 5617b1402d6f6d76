// Package corpus loads the labeled resume dataset the benchmark
// profiles are built from.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"resumebench/internal/errors"
	"resumebench/internal/types"
)

// Load reads a labeled resume corpus from a CSV file. The file must
// carry a header row naming a "Category" and a "Resume" column; any
// other columns are ignored. Rows with an empty category are skipped.
// Empty resume text is kept and treated as zero-signal downstream.
func Load(path string) ([]types.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
			fmt.Sprintf("failed to open corpus file %s", path), err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	records, err := Read(file)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr.WithContext("path", path)
		}
		return nil, err
	}
	return records, nil
}

// Read parses a labeled resume corpus from CSV data.
func Read(r io.Reader) ([]types.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewCorpusError(errors.ErrCodeEmptyCorpus,
				"corpus file is empty", nil)
		}
		return nil, errors.NewCorpusError(errors.ErrCodeInvalidFormat,
			"failed to read corpus header", err)
	}

	categoryIdx, resumeIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Category":
			categoryIdx = i
		case "Resume":
			resumeIdx = i
		}
	}
	if categoryIdx < 0 || resumeIdx < 0 {
		return nil, errors.NewCorpusError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("corpus header must contain Category and Resume columns, got %v", header), nil)
	}

	var records []types.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewCorpusError(errors.ErrCodeInvalidFormat,
				"failed to read corpus row", err)
		}
		if categoryIdx >= len(row) || resumeIdx >= len(row) {
			continue
		}
		category := strings.TrimSpace(row[categoryIdx])
		if category == "" {
			continue
		}
		records = append(records, types.Record{
			Category: category,
			Text:     row[resumeIdx],
		})
	}

	if len(records) == 0 {
		return nil, errors.NewCorpusError(errors.ErrCodeEmptyCorpus,
			"corpus contains no usable records", nil)
	}

	return records, nil
}

// CountByCategory tallies records per category.
func CountByCategory(records []types.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Category]++
	}
	return counts
}

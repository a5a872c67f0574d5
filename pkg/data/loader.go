package data

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/seanpue/shannon/pkg/core"
)

// LoadCSV reads a CSV file of numeric observations into a sample matrix,
// one row per sample and one column per dimension. A non-numeric first
// row is treated as a header and its labels are returned; otherwise the
// labels are empty. Rows with the wrong field count or unparseable values
// are skipped with a note on stderr.
func LoadCSV(path string) (*core.Matrix, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1

	var header []string
	var rows [][]float64
	cols := -1
	first := true

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "data: skipping record: %v\n", err)
			continue
		}

		row, ok := parseRow(rec)
		if first {
			first = false
			if !ok {
				header = append(header, rec...)
				continue
			}
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "data: skipping non-numeric record %v\n", rec)
			continue
		}
		if cols == -1 {
			cols = len(row)
		}
		if len(row) != cols {
			fmt.Fprintf(os.Stderr, "data: skipping record with %d fields, want %d\n", len(row), cols)
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("data: no numeric observations in %s", path)
	}
	m, err := core.FromSlice(rows)
	if err != nil {
		return nil, nil, err
	}
	return m, header, nil
}

func parseRow(rec []string) ([]float64, bool) {
	row := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		row[i] = v
	}
	return row, true
}

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

type CSVReader struct{}

func (r *CSVReader) Read(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	table, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseCSV reads a header-first CSV document. Rows may be shorter or longer
// than the header; missing cells read as empty strings.
func ParseCSV(input io.Reader) (*Table, error) {
	reader := csv.NewReader(input)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: csv document has no header row", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %w", ErrParse, err)
	}

	rows := make([][]string, 0, 128)
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read csv row %d: %w", ErrParse, rowNumber+1, err)
		}
		rows = append(rows, row)
		rowNumber++
	}

	return buildTable(headers, rows, 2), nil
}

package importer

import "strings"

const utf8BOM = "\ufeff"

// Record is one data row keyed by the published header text.
type Record struct {
	RowNumber int
	Values    map[string]string
}

// Get returns the value of the first key present on the record. Keys must
// match the header byte-for-byte.
func (r Record) Get(keys ...string) string {
	for _, key := range keys {
		if value, ok := r.Values[key]; ok {
			return value
		}
	}
	return ""
}

// Table is a parsed document: the header row plus every data row.
type Table struct {
	Headers []string
	Records []Record
}

func (t *Table) HasHeader(header string) bool {
	for _, candidate := range t.Headers {
		if candidate == header {
			return true
		}
	}
	return false
}

// FirstHeader returns the first of the given headers present in the table.
func (t *Table) FirstHeader(headers ...string) (string, bool) {
	for _, header := range headers {
		if t.HasHeader(header) {
			return header, true
		}
	}
	return "", false
}

func buildTable(headers []string, rows [][]string, firstRowNumber int) *Table {
	cleaned := make([]string, len(headers))
	copy(cleaned, headers)
	if len(cleaned) > 0 {
		cleaned[0] = strings.TrimPrefix(cleaned[0], utf8BOM)
	}

	table := &Table{Headers: cleaned, Records: make([]Record, 0, len(rows))}
	for i, row := range rows {
		values := make(map[string]string, len(cleaned))
		for col, header := range cleaned {
			if col < len(row) {
				values[header] = row[col]
			} else {
				values[header] = ""
			}
		}
		table.Records = append(table.Records, Record{RowNumber: firstRowNumber + i, Values: values})
	}
	return table
}

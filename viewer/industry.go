package viewer

import "strings"

// IndustryRow is one line of the basic-industry mini-table.
type IndustryRow struct {
	Sector        string
	Industry      string
	Share         string
	Justification Collapsible
	// Placeholder marks the single N/A row rendered across all columns.
	Placeholder bool
}

// ParseIndustryTable splits the newline-separated, pipe-delimited mini-table
// into rows of exactly four fields. Embedded pipes or newlines inside a field
// are not escaped and split like any other.
func ParseIndustryTable(text string, limit int) []IndustryRow {
	if text == "" || text == "undefined" {
		return []IndustryRow{{Placeholder: true}}
	}

	lines := strings.Split(text, "\n")
	rows := make([]IndustryRow, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), "|")
		for len(fields) < 4 {
			fields = append(fields, "")
		}
		rows = append(rows, IndustryRow{
			Sector:        fields[0],
			Industry:      fields[1],
			Share:         fields[2],
			Justification: Collapse(fields[3], limit),
		})
	}
	return rows
}

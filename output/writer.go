package output

import (
	"fmt"
	"strings"
)

// Sheet is a header row plus string rows, written as-is by every Writer.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

type Writer interface {
	Write(path string, sheet Sheet) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatForPath infers the output format from the file extension when format
// is empty.
func FormatForPath(path, format string) string {
	if strings.TrimSpace(format) != "" {
		return normalizeFormat(format)
	}
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return "excel"
	}
	return "csv"
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

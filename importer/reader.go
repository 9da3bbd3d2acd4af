package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrParse marks a document that could not be read as a header-first table.
var ErrParse = errors.New("parse failure")

type Reader interface {
	Read(path string) (*Table, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// InferFormat returns format when set, otherwise derives it from the file extension.
func InferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}

// ReadFile reads path with the reader matching its (possibly inferred) format.
func ReadFile(path string, format string) (*Table, error) {
	sourceFormat, err := InferFormat(path, format)
	if err != nil {
		return nil, err
	}
	reader, err := ReaderForFormat(sourceFormat)
	if err != nil {
		return nil, err
	}
	return reader.Read(path)
}

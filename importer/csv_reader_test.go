package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCSV_KeepsHeadersByteForByte(t *testing.T) {
	t.Parallel()

	input := "\ufeffCompany Name,Revenue Share Analysis \nAcme,Mostly steel\n"
	table, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if !table.HasHeader("Company Name") {
		t.Fatalf("expected BOM to be stripped from first header, got %q", table.Headers)
	}
	if !table.HasHeader("Revenue Share Analysis ") {
		t.Fatalf("expected trailing space to be preserved, got %q", table.Headers)
	}
	if table.HasHeader("Revenue Share Analysis") {
		t.Fatalf("expected trimmed header to be absent")
	}
	if got := table.Records[0].Get("Revenue Share Analysis "); got != "Mostly steel" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestParseCSV_RaggedRows(t *testing.T) {
	t.Parallel()

	input := "A,B,C\n1,2\n4,5,6,7\n"
	table, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(table.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table.Records))
	}
	if got := table.Records[0].Get("C"); got != "" {
		t.Fatalf("expected missing cell to be empty, got %q", got)
	}
	if got := table.Records[1].Get("C"); got != "6" {
		t.Fatalf("unexpected cell value %q", got)
	}
	if table.Records[1].RowNumber != 3 {
		t.Fatalf("expected row number 3, got %d", table.Records[1].RowNumber)
	}
}

func TestParseCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: ""},
		{name: "bare quote", input: "A,B\n1,\"broken\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCSV(strings.NewReader(tt.input))
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestReadFile_InfersCSVFromExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Green_Companies_2024.csv")
	if err := os.WriteFile(path, []byte("Company Name,Nature of Activity\nAcme,Solar\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	table, err := ReadFile(path, "")
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if got := table.Records[0].Get("Nature Of Activity", "Nature of Activity"); got != "Solar" {
		t.Fatalf("unexpected activity %q", got)
	}
}

func TestInferFormat_RejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	if _, err := InferFormat("sectors.txt", ""); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
	format, err := InferFormat("sectors.txt", "csv")
	if err != nil || format != "csv" {
		t.Fatalf("expected explicit format to win, got %q, %v", format, err)
	}
}

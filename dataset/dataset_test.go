package dataset

import (
	"errors"
	"strings"
	"testing"

	"aimlookup/importer"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, input string) *importer.Table {
	t.Helper()
	table, err := importer.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return table
}

func TestDecodeCompanies_NormalizesAndDropsEmptyNames(t *testing.T) {
	t.Parallel()

	table := mustParse(t, "Company Name,Industry,Category\n"+
		"Tesla Inc.,Auto,Green\n"+
		",Unknown,Red\n"+
		" . ,Dots,Red\n"+
		"JBS S.A.,Meat Processing,Red\n")

	got, err := DecodeCompanies(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Company{
		{Name: "tesla inc", DisplayName: "Tesla Inc.", Industry: "Auto", Category: "Green"},
		{Name: "jbs s.a", DisplayName: "JBS S.A.", Industry: "Meat Processing", Category: "Red"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected companies (-want +got):\n%s", diff)
	}
	if !got[0].IsGreen() || got[0].IsRed() {
		t.Fatalf("expected first company to be green")
	}
	if !got[1].IsRed() {
		t.Fatalf("expected second company to be red")
	}
}

func TestDecodeCompanies_MissingColumnIsParseFailure(t *testing.T) {
	t.Parallel()

	table := mustParse(t, "Company,Industry,Category\nAcme,Steel,Green\n")
	_, err := DecodeCompanies(table)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !errors.Is(err, importer.ErrParse) {
		t.Fatalf("expected error to classify as parse failure, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Company Name"`) {
		t.Fatalf("expected missing column name in error, got %v", err)
	}
}

func TestDecodeEquities(t *testing.T) {
	t.Parallel()

	table := mustParse(t, "SYMBOL,NAME OF COMPANY\nTSLA,Tesla Inc.\nNONE,\n")
	got, err := DecodeEquities(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Equity{{Name: "tesla inc", DisplayName: "Tesla Inc."}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected equities (-want +got):\n%s", diff)
	}
}

func TestDecodeDetails_RequiresTrailingSpaceHeader(t *testing.T) {
	t.Parallel()

	header := "Company Name,Analysis Year,AIM Category,Revenue Share Analysis,Review Status,Pending Review Comments,Basic Industry (Basic_Ind_Code),BWC 2017 Category,Activities from BWC Guide\n"
	_, err := DecodeDetails(mustParse(t, header+"Acme,2024,Green,x,Done,,,,\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected trimmed revenue header to be rejected, got %v", err)
	}

	header = strings.Replace(header, "Revenue Share Analysis,", "Revenue Share Analysis ,", 1)
	got, err := DecodeDetails(mustParse(t, header+"Acme,2024,Green,Mostly cement,Done,None,\"Materials|Cement|80%|Core\",Grey,Mining\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Detail{{
		CompanyName:            "Acme",
		AnalysisYear:           "2024",
		AIMCategory:            "Green",
		RevenueShareAnalysis:   "Mostly cement",
		ReviewStatus:           "Done",
		PendingReviewComments:  "None",
		BasicIndustry:          "Materials|Cement|80%|Core",
		BWC2017Category:        "Grey",
		ActivitiesFromBWCGuide: "Mining",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected details (-want +got):\n%s", diff)
	}
}

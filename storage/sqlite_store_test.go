package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "aimlookup_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_InsertNSECompaniesIgnoresDuplicates(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	companies := []NSECompany{
		{CompanyName: "Tata Steel Ltd.", BasicIndustry: "Iron & Steel", SourceFile: "NSE_Company_Classification.csv"},
		{CompanyName: "JSW Steel Ltd.", BasicIndustry: " iron & steel ", SourceFile: "NSE_Company_Classification.csv"},
		{CompanyName: "Infosys Ltd.", BasicIndustry: "Computers - Software", SourceFile: "NSE_Company_Classification.csv"},
	}

	inserted, err := store.InsertNSECompanies(companies)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if inserted != 3 {
		t.Fatalf("expected 3 inserted rows, got %d", inserted)
	}

	inserted, err = store.InsertNSECompanies(companies[:1])
	if err != nil {
		t.Fatalf("insert duplicate: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected duplicate to be ignored, got %d", inserted)
	}

	listed, err := store.ListNSECompaniesByIndustry("IRON & STEEL ")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].CompanyName != "Tata Steel Ltd." || listed[1].CompanyName != "JSW Steel Ltd." {
		t.Fatalf("unexpected companies %+v", listed)
	}
}

func TestSQLiteStore_CategoryCompaniesKeepImportOrder(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	_, err := store.InsertCategoryCompanies([]CategoryCompany{
		{CompanyName: "Tata Steel", NormalizedName: "tata steel", Category: "RED", NatureOfActivity: "Steel", SourceFile: "Red_Companies_2024.csv"},
		{CompanyName: "Tata Steel", NormalizedName: "tata steel", Category: "GREEN", NatureOfActivity: "Steel", SourceFile: "Green_Companies_2024.csv"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	listed, err := store.ListCategoryCompanies()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].Category != "RED" || listed[1].Category != "GREEN" {
		t.Fatalf("unexpected companies %+v", listed)
	}
	if listed[0].ID <= 0 || listed[0].ID >= listed[1].ID {
		t.Fatalf("expected increasing ids, got %d and %d", listed[0].ID, listed[1].ID)
	}
}

func TestSQLiteStore_CountsAndDeleteAll(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if _, err := store.InsertNSECompanies([]NSECompany{{CompanyName: "A", BasicIndustry: "B", SourceFile: "f"}}); err != nil {
		t.Fatalf("insert nse: %v", err)
	}
	if _, err := store.InsertCategoryCompanies([]CategoryCompany{{CompanyName: "A", NormalizedName: "a", Category: "GREY", SourceFile: "g"}}); err != nil {
		t.Fatalf("insert category: %v", err)
	}

	nse, category, err := store.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if nse != 1 || category != 1 {
		t.Fatalf("expected 1/1 rows, got %d/%d", nse, category)
	}

	removed, err := store.DeleteAll()
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed rows, got %d", removed)
	}
	nse, category, _ = store.Counts()
	if nse != 0 || category != 0 {
		t.Fatalf("expected empty tables, got %d/%d", nse, category)
	}
}

func TestSQLiteStore_InsertEmpty(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	inserted, err := store.InsertNSECompanies(nil)
	if err != nil || inserted != 0 {
		t.Fatalf("expected no-op insert, got %d %v", inserted, err)
	}
}

func TestSQLiteStore_ListBasicIndustries(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	_, err := store.InsertNSECompanies([]NSECompany{
		{CompanyName: "A", BasicIndustry: "Cement", SourceFile: "nse.csv"},
		{CompanyName: "B", BasicIndustry: "Banks", SourceFile: "nse.csv"},
		{CompanyName: "C", BasicIndustry: " cement ", SourceFile: "nse.csv"},
		{CompanyName: "D", BasicIndustry: "", SourceFile: "nse.csv"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	industries, err := store.ListBasicIndustries()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(industries) != 2 || industries[0] != "Cement" || industries[1] != "Banks" {
		t.Fatalf("unexpected industries %v", industries)
	}
}

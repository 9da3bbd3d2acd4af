package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// NSECompany is one row of the NSE basic-industry classification file.
type NSECompany struct {
	ID            int64
	CompanyName   string
	BasicIndustry string
	SourceFile    string
}

// CategoryCompany is one row of a category company file. NormalizedName is
// the comparison key; Category is derived from the source file name.
type CategoryCompany struct {
	ID               int64
	CompanyName      string
	NormalizedName   string
	Category         string
	NatureOfActivity string
	SourceFile       string
}

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS nse_companies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company_name TEXT NOT NULL,
	basic_industry TEXT NOT NULL,
	source_file TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(company_name, basic_industry, source_file)
);
CREATE INDEX IF NOT EXISTS idx_nse_companies_industry
	ON nse_companies (basic_industry COLLATE NOCASE);
CREATE TABLE IF NOT EXISTS category_companies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company_name TEXT NOT NULL,
	normalized_name TEXT NOT NULL,
	category TEXT NOT NULL,
	nature_of_activity TEXT NOT NULL,
	source_file TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(normalized_name, category, source_file)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertNSECompanies stores rows in one transaction and returns how many were
// new. Rows already present are ignored.
func (s *SQLiteStore) InsertNSECompanies(companies []NSECompany) (int, error) {
	const insertStmt = `
INSERT OR IGNORE INTO nse_companies (
	company_name,
	basic_industry,
	source_file
) VALUES (?, ?, ?);`

	args := make([][]any, 0, len(companies))
	for _, company := range companies {
		args = append(args, []any{company.CompanyName, company.BasicIndustry, company.SourceFile})
	}
	return s.insertAll("nse company", insertStmt, args)
}

func (s *SQLiteStore) InsertCategoryCompanies(companies []CategoryCompany) (int, error) {
	const insertStmt = `
INSERT OR IGNORE INTO category_companies (
	company_name,
	normalized_name,
	category,
	nature_of_activity,
	source_file
) VALUES (?, ?, ?, ?, ?);`

	args := make([][]any, 0, len(companies))
	for _, company := range companies {
		args = append(args, []any{
			company.CompanyName,
			company.NormalizedName,
			company.Category,
			company.NatureOfActivity,
			company.SourceFile,
		})
	}
	return s.insertAll("category company", insertStmt, args)
}

func (s *SQLiteStore) insertAll(kind, insertStmt string, rows [][]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, args := range rows {
		res, err := stmt.Exec(args...)
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert %s: %w", kind, err)
		}

		affected, err := res.RowsAffected()
		if err == nil && affected > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListNSECompaniesByIndustry returns companies whose basic industry equals
// industry after trimming, compared case-insensitively, in import order.
func (s *SQLiteStore) ListNSECompaniesByIndustry(industry string) ([]NSECompany, error) {
	const query = `
SELECT id, company_name, basic_industry, source_file
FROM nse_companies
WHERE lower(trim(basic_industry)) = lower(trim(?))
ORDER BY id;
`

	rows, err := s.db.Query(query, industry)
	if err != nil {
		return nil, fmt.Errorf("query nse companies: %w", err)
	}
	defer rows.Close()

	companies := make([]NSECompany, 0, 64)
	for rows.Next() {
		var company NSECompany
		if err := rows.Scan(&company.ID, &company.CompanyName, &company.BasicIndustry, &company.SourceFile); err != nil {
			return nil, fmt.Errorf("scan nse company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nse companies: %w", err)
	}

	return companies, nil
}

// ListCategoryCompanies returns every category company in import order.
func (s *SQLiteStore) ListCategoryCompanies() ([]CategoryCompany, error) {
	const query = `
SELECT id, company_name, normalized_name, category, nature_of_activity, source_file
FROM category_companies
ORDER BY id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query category companies: %w", err)
	}
	defer rows.Close()

	companies := make([]CategoryCompany, 0, 256)
	for rows.Next() {
		var company CategoryCompany
		if err := rows.Scan(
			&company.ID,
			&company.CompanyName,
			&company.NormalizedName,
			&company.Category,
			&company.NatureOfActivity,
			&company.SourceFile,
		); err != nil {
			return nil, fmt.Errorf("scan category company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category companies: %w", err)
	}

	return companies, nil
}

// Counts reports how many rows each table holds.
func (s *SQLiteStore) Counts() (nse int, category int, err error) {
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM nse_companies;`).Scan(&nse); err != nil {
		return 0, 0, fmt.Errorf("count nse companies: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM category_companies;`).Scan(&category); err != nil {
		return 0, 0, fmt.Errorf("count category companies: %w", err)
	}
	return nse, category, nil
}

// DeleteAll empties both tables and returns the number of removed rows.
func (s *SQLiteStore) DeleteAll() (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	var removed int64
	for _, table := range []string{"nse_companies", "category_companies"} {
		res, err := tx.Exec(`DELETE FROM ` + table + `;`)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("delete %s: %w", table, err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("read deleted row count: %w", err)
		}
		removed += rows
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete transaction: %w", err)
	}
	return removed, nil
}

// ListBasicIndustries returns each distinct trimmed basic industry once, in
// the order it was first imported.
func (s *SQLiteStore) ListBasicIndustries() ([]string, error) {
	const query = `
SELECT trim(basic_industry) AS industry, MIN(id) AS first_id
FROM nse_companies
WHERE trim(basic_industry) <> ''
GROUP BY lower(trim(basic_industry))
ORDER BY first_id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query basic industries: %w", err)
	}
	defer rows.Close()

	industries := make([]string, 0, 64)
	for rows.Next() {
		var (
			industry string
			firstID  int64
		)
		if err := rows.Scan(&industry, &firstID); err != nil {
			return nil, fmt.Errorf("scan basic industry: %w", err)
		}
		industries = append(industries, industry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate basic industries: %w", err)
	}
	return industries, nil
}

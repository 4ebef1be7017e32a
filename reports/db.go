package reports

import (
	"database/sql"

	"github.com/dude333/dartfin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DBSource reads a stored run from the sqlite mirror.
type DBSource struct {
	db *sql.DB
}

// NewDBSource returns a source backed by 'db'.
func NewDBSource(db *sql.DB) *DBSource {
	return &DBSource{db: db}
}

// CompanyInfo contains the company code and name.
type CompanyInfo struct {
	Code string
	Name string
}

//
// ListCompanies returns the companies of the last stored run, by name.
//
func ListCompanies(db *sql.DB) ([]CompanyInfo, error) {
	selectCompanies := `
		SELECT CODE, NAME
		FROM companies
		ORDER BY NAME, CODE;`

	rows, err := db.Query(selectCompanies)
	if err != nil {
		return nil, errors.Wrap(err, "reading companies")
	}
	defer rows.Close()

	var list []CompanyInfo
	for rows.Next() {
		var info CompanyInfo
		if err := rows.Scan(&info.Code, &info.Name); err != nil {
			return list, errors.Wrap(err, "reading company")
		}
		list = append(list, info)
	}

	return list, rows.Err()
}

// Codes returns the stored entity codes, sorted. Nil on read errors.
func (s *DBSource) Codes() []string {
	rows, err := s.db.Query(`SELECT CODE FROM companies ORDER BY CODE;`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if rows.Scan(&code) == nil {
			codes = append(codes, code)
		}
	}
	return codes
}

// CompanyName returns the stored name of 'code'.
func (s *DBSource) CompanyName(code string) (string, bool) {
	var name string
	err := s.db.QueryRow(`SELECT NAME FROM companies WHERE CODE = ?;`, code).Scan(&name)
	if err != nil {
		return "", false
	}
	return name, true
}

//
// Amount returns the stored figure; null or missing rows give false.
//
func (s *DBSource) Amount(code string, metric dartfin.Metric, year int, period dartfin.Period) (decimal.Decimal, bool) {
	selectAmount := `
	SELECT
		AMOUNT
	FROM
		series
	WHERE
		CODE = ? AND METRIC = ? AND YEAR = ? AND PERIOD = ?;`

	var amount sql.NullString
	err := s.db.QueryRow(selectAmount, code, metric.String(), year, period.String()).Scan(&amount)
	if err != nil || !amount.Valid {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(amount.String)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

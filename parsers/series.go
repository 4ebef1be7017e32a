package parsers

import (
	"database/sql"
	"strconv"

	"github.com/dude333/dartfin"
	"github.com/pkg/errors"
)

// Filing is one extract applied during a run, in application order.
type Filing struct {
	Path      string // not stored
	Name      string
	Year      int
	Period    dartfin.Period
	Category  string
	Statement string
	Companies int
	MD5       string
}

//
// StoreDocument replaces the contents of the sqlite mirror with 'doc' and the
// filings that produced it. Everything runs in one transaction so a reader
// never sees a half written run.
//
func StoreDocument(db *sql.DB, doc dartfin.Document, filings []Filing) (err error) {
	if err = createAllTables(db); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, t := range []string{"companies", "series", "filings"} {
		if _, err = tx.Exec("DELETE FROM " + t); err != nil {
			return errors.Wrapf(err, "cleaning table %s", t)
		}
	}

	insCompany, err := tx.Prepare(`INSERT INTO companies (CODE, NAME) VALUES (?, ?);`)
	if err != nil {
		return errors.Wrap(err, "preparing companies insert")
	}
	defer insCompany.Close()

	insSeries, err := tx.Prepare(`INSERT INTO series (CODE, METRIC, YEAR, PERIOD, AMOUNT) VALUES (?, ?, ?, ?, ?);`)
	if err != nil {
		return errors.Wrap(err, "preparing series insert")
	}
	defer insSeries.Close()

	for _, code := range doc.Codes() {
		c := doc[code]
		if _, err = insCompany.Exec(code, c.CompanyName); err != nil {
			return errors.Wrapf(err, "inserting company %s", code)
		}
		for _, metric := range Metrics {
			for _, year := range c.Years(metric) {
				p := c.Series(metric)[strconv.Itoa(year)]
				for _, period := range dartfin.AllPeriods {
					var amount sql.NullString
					if v := p.Get(period); v.Valid {
						amount = sql.NullString{String: v.Decimal.String(), Valid: true}
					}
					_, err = insSeries.Exec(code, metric.String(), year, period.String(), amount)
					if err != nil {
						return errors.Wrapf(err, "inserting %s %s %d", code, metric, year)
					}
				}
			}
		}
	}

	insFiling, err := tx.Prepare(`INSERT INTO filings
		(SEQ, MD5, NAME, YEAR, PERIOD, CATEGORY, STATEMENT, COMPANIES)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return errors.Wrap(err, "preparing filings insert")
	}
	defer insFiling.Close()

	for i, f := range filings {
		if f.MD5 == "" && f.Path != "" {
			if f.MD5, err = md5FromFile(f.Path); err != nil {
				return errors.Wrapf(err, "fingerprinting %s", f.Name)
			}
		}
		_, err = insFiling.Exec(i+1, f.MD5, f.Name, f.Year, f.Period.String(), f.Category, f.Statement, f.Companies)
		if err != nil {
			return errors.Wrapf(err, "inserting filing %s", f.Name)
		}
	}

	return errors.Wrap(tx.Commit(), "commit")
}

//
// ListFilings returns the filings of the last stored run, in order.
//
func ListFilings(db *sql.DB) ([]Filing, error) {
	if !hasTable(db, "filings") {
		return nil, nil
	}

	rows, err := db.Query(`SELECT MD5, NAME, YEAR, PERIOD, CATEGORY, STATEMENT, COMPANIES
		FROM filings ORDER BY SEQ`)
	if err != nil {
		return nil, errors.Wrap(err, "reading filings")
	}
	defer rows.Close()

	var filings []Filing
	for rows.Next() {
		var f Filing
		var period string
		err = rows.Scan(&f.MD5, &f.Name, &f.Year, &period, &f.Category, &f.Statement, &f.Companies)
		if err != nil {
			return filings, errors.Wrap(err, "reading filing")
		}
		f.Period, _ = dartfin.ParsePeriod(period)
		filings = append(filings, f)
	}

	return filings, rows.Err()
}

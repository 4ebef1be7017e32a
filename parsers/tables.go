package parsers

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
)

const currentDbVersion = 241001

var createTableMap = map[string]string{
	"companies": `CREATE TABLE IF NOT EXISTS companies
	(
		"CODE" varchar(6) NOT NULL PRIMARY KEY,
		"NAME" varchar(100)
	);`,

	"series": `CREATE TABLE IF NOT EXISTS series
	(
		"CODE" varchar(6) NOT NULL,
		"METRIC" varchar(20) NOT NULL,
		"YEAR" integer NOT NULL,
		"PERIOD" varchar(2) NOT NULL,
		"AMOUNT" text,
		PRIMARY KEY ("CODE", "METRIC", "YEAR", "PERIOD")
	);`,

	"filings": `CREATE TABLE IF NOT EXISTS filings
	(
		"SEQ" integer NOT NULL PRIMARY KEY,
		"MD5" varchar(32),
		"NAME" varchar(200),
		"YEAR" integer,
		"PERIOD" varchar(2),
		"CATEGORY" varchar(20),
		"STATEMENT" varchar(20),
		"COMPANIES" integer
	);`,

	"status": `CREATE TABLE IF NOT EXISTS status
	(
		table_name TEXT NOT NULL PRIMARY KEY,
		version integer
	);`,
}

//
// whatTable for the data type
//
func whatTable(dataType string) (table string, err error) {
	switch dataType {
	case "companies", "COMPANIES":
		table = "companies"
	case "series", "SERIES":
		table = "series"
	case "filings", "FILINGS":
		table = "filings"
	case "status", "STATUS":
		table = "status"
	default:
		return "", errors.Errorf("unknown data type: %s", dataType)
	}

	return
}

//
// createTable creates the table if not created yet
//
func createTable(db *sql.DB, dataType string) (err error) {
	table, err := whatTable(dataType)
	if err != nil {
		return err
	}

	_, err = db.Exec(createTableMap[table])
	if err != nil {
		return errors.Wrap(err, "creating table "+table)
	}

	err = createIndexes(db, table)
	if err != nil {
		return errors.Wrap(err, "creating index for table "+table)
	}

	if table == "status" {
		return nil
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO status (table_name, version) VALUES (?, ?)`, table, currentDbVersion)
	if err != nil {
		return errors.Wrap(err, "updating table "+table)
	}

	return nil
}

//
// createAllTables wipes the tables created by an older version and (re)creates
// all of them.
//
func createAllTables(db *sql.DB) error {
	if err := createTable(db, "status"); err != nil {
		return err
	}
	for _, t := range []string{"companies", "series", "filings"} {
		if v, table := dbVersion(db, t); v != currentDbVersion {
			if v > 0 {
				fmt.Printf("[i] Dropping table %s version %d (current version: %d)\n", table, v, currentDbVersion)
			}
			if err := wipeDB(db, t); err != nil {
				return err
			}
		}
		if err := createTable(db, t); err != nil {
			return err
		}
	}
	return nil
}

//
// dbVersion returns the version stored in DB
//
func dbVersion(db *sql.DB, dataType string) (v int, table string) {
	table, err := whatTable(dataType)
	if err != nil {
		return
	}

	sqlStmt := `SELECT version FROM status WHERE table_name = ?`
	_ = db.QueryRow(sqlStmt, table).Scan(&v)

	return
}

//
// wipeDB drops the table! Use with care
//
func wipeDB(db *sql.DB, dataType string) (err error) {
	table, err := whatTable(dataType)
	if err != nil {
		return
	}

	_, err = db.Exec("DROP TABLE IF EXISTS " + table)
	if err != nil {
		return errors.Wrap(err, "dropping table")
	}

	return
}

//
// createIndexes create indexes based on table name
//
func createIndexes(db *sql.DB, table string) error {
	indexes := []string{}

	switch table {
	case "series":
		indexes = []string{
			"CREATE INDEX IF NOT EXISTS series_year ON series (CODE, YEAR);",
		}
	case "filings":
		indexes = []string{
			"CREATE INDEX IF NOT EXISTS filings_md5 ON filings (MD5);",
		}
	}

	for _, idx := range indexes {
		_, err := db.Exec(idx)
		if err != nil {
			return errors.Wrap(err, "creating index")
		}
	}

	return nil
}

//
// hasTable checks if the table exists
//
func hasTable(db *sql.DB, tableName string) bool {
	sqlStmt := `SELECT name FROM sqlite_master WHERE type='table' AND name=?;`
	var n string
	err := db.QueryRow(sqlStmt, tableName).Scan(&n)
	if err != nil {
		return false
	}

	return n == tableName
}

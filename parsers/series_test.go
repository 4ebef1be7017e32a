package parsers

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/dude333/dartfin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoreDocument(t *testing.T) {
	db := openTestDB(t)

	c := dartfin.NewCompany("삼성전자")
	c.Revenue["2024"] = &dartfin.Periods{
		Q1: dartfin.NewValue(decimal.NewFromInt(1000000)),
		H1: dartfin.NewValue(decimal.NewFromInt(2500000)),
		Q2: dartfin.NewValue(decimal.NewFromInt(1500000)),
	}
	c.OperatingIncome["2024"] = &dartfin.Periods{Q1: dartfin.NewValue(decimal.NewFromInt(-50))}
	doc := dartfin.Document{"005930": c}

	file := filepath.Join(t.TempDir(), "2024_1분기보고서_02_손익계산서_연결_1.txt")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0600))
	filings := []Filing{
		{Path: file, Name: filepath.Base(file), Year: 2024, Period: dartfin.Q1, Category: "연결", Statement: "손익계산서", Companies: 1},
	}

	require.NoError(t, StoreDocument(db, doc, filings))
	// a second run replaces everything
	require.NoError(t, StoreDocument(db, doc, filings))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM series`).Scan(&n))
	assert.Equal(t, 12, n, "six periods per metric and year")
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM series WHERE AMOUNT IS NOT NULL`).Scan(&n))
	assert.Equal(t, 4, n)

	var amount string
	require.NoError(t, db.QueryRow(`SELECT AMOUNT FROM series WHERE CODE='005930' AND METRIC='operatingIncome' AND YEAR=2024 AND PERIOD='Q1'`).Scan(&amount))
	assert.Equal(t, "-50", amount)

	list, err := ListFilings(db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", list[0].MD5)
	assert.Equal(t, dartfin.Q1, list[0].Period)
	assert.Equal(t, "연결", list[0].Category)

	v, table := dbVersion(db, "series")
	assert.Equal(t, currentDbVersion, v, table)
}

func TestListFilingsEmptyDB(t *testing.T) {
	db := openTestDB(t)
	list, err := ListFilings(db)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestStoreDocument_MissingFiling(t *testing.T) {
	db := openTestDB(t)

	c := dartfin.NewCompany("삼성전자")
	c.Revenue["2024"] = &dartfin.Periods{Q1: dartfin.NewValue(decimal.NewFromInt(100))}
	doc := dartfin.Document{"005930": c}
	require.NoError(t, StoreDocument(db, doc, nil))

	filings := []Filing{
		{Path: filepath.Join(t.TempDir(), "gone.txt"), Name: "gone.txt", Year: 2024, Period: dartfin.Q1},
	}
	assert.Error(t, StoreDocument(db, dartfin.Document{}, filings))

	// the previous run is kept
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM series`).Scan(&n))
	assert.Equal(t, 6, n)
	list, err := ListFilings(db)
	require.NoError(t, err)
	assert.Empty(t, list)
}

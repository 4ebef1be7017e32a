package reconcile

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dude333/dartfin"
	"github.com/dude333/dartfin/reports"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

const header = "재무제표종류\t종목코드\t회사명\t시장구분\t업종\t업종명\t결산월\t결산기준일\t보고서종류\t통화\t항목코드\t항목명\t당기"

func filingLine(code, name, account, label, amount string) string {
	f := make([]string, 14)
	f[0] = "재무제표"
	f[1] = "[" + code + "]"
	f[2] = name
	f[10] = account
	f[11] = label
	f[12] = amount
	return strings.Join(f, "\t")
}

func writeFiling(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	text := strings.Join(append([]string{header}, lines...), "\r\n")
	b, err := korean.EUCKR.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), b, 0644))
}

// filings lays out one fiscal year of two companies.
func filings(t *testing.T) string {
	dir := t.TempDir()

	writeFiling(t, dir, "2024_1분기보고서_02_손익계산서_은행_연결_20240630.txt",
		filingLine("005930", "삼성전자", "ifrs-full_Revenue", "매출액", "3,000,000"),
	)
	writeFiling(t, dir, "2024_1분기보고서_02_손익계산서_연결_20240630.txt",
		filingLine("005930", "삼성전자", "ifrs-full_Revenue", "매출액", "1,000,000"),
		filingLine("005930", "삼성전자", "dart_OperatingIncomeLoss", "영업손실", "-50"),
		filingLine("000660", "SK하이닉스", "ifrs-full_Revenue", "매출액", "1,000,000"),
	)
	writeFiling(t, dir, "2024_반기보고서_02_손익계산서_연결_20240830.txt",
		filingLine("005930", "삼성전자", "ifrs-full_Revenue", "매출액", "2,400,000"),
		filingLine("005930", "삼성전자", "dart_OperatingIncomeLoss", "영업손실", "-80"),
		filingLine("000660", "SK하이닉스", "ifrs-full_Revenue", "매출액", "900,000"),
	)
	// the comprehensive statement is applied after the income statement
	writeFiling(t, dir, "2024_반기보고서_03_포괄손익계산서_연결_20240830.txt",
		filingLine("005930", "삼성전자", "ifrs-full_Revenue", "매출액", "2,500,000"),
	)
	writeFiling(t, dir, "2024_3분기보고서_02_손익계산서_연결_20241130.txt",
		filingLine("005930", "삼성전자", "ifrs-full_Revenue", "매출액", "3,600,000"),
		filingLine("005930", "삼성전자", "dart_OperatingIncomeLoss", "영업이익", "10"),
	)
	writeFiling(t, dir, "2024_사업보고서_02_손익계산서_연결_20250330.txt",
		filingLine("005930", "삼성전자", "ifrs-full_Revenue", "매출액", "5,000,000"),
		filingLine("005930", "삼성전자", "dart_OperatingIncomeLoss", "영업이익", "100"),
	)

	// a line longer than the scanner accepts makes the filing unreadable
	broken := bytes.Repeat([]byte("x"), 2*1024*1024)
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "2024_3분기보고서_03_포괄손익계산서_연결_20241130.txt"), broken, 0644))

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	return dir
}

func amount(t *testing.T, doc dartfin.Document, code string, metric dartfin.Metric, period dartfin.Period) string {
	t.Helper()
	d, ok := doc.Amount(code, metric, 2024, period)
	if !ok {
		return "null"
	}
	return d.String()
}

func TestRun(t *testing.T) {
	dir := filings(t)
	var buf bytes.Buffer
	log := reports.NewLogger(&buf)

	res, err := Run(dir, DefaultPlan(2024, 2025), log)
	require.NoError(t, err)
	doc := res.Document

	require.Len(t, doc, 2)
	assert.Equal(t, "삼성전자", doc["005930"].CompanyName)
	assert.Equal(t, "SK하이닉스", doc["000660"].CompanyName)

	rev := map[dartfin.Period]string{
		dartfin.Q1: "1000000", // general consolidated filing overwrites the bank one
		dartfin.Q2: "1500000",
		dartfin.Q3: "3600000",
		dartfin.Q4: "1400000",
		dartfin.H1: "2500000", // comprehensive statement overwrites 2,400,000
		dartfin.FY: "5000000",
	}
	op := map[dartfin.Period]string{
		dartfin.Q1: "-50",
		dartfin.Q2: "-30",
		dartfin.Q3: "10",
		dartfin.Q4: "90",
		dartfin.H1: "-80",
		dartfin.FY: "100",
	}
	for _, p := range dartfin.AllPeriods {
		assert.Equal(t, rev[p], amount(t, doc, "005930", dartfin.Revenue, p), "revenue %s", p)
		assert.Equal(t, op[p], amount(t, doc, "005930", dartfin.OperatingIncome, p), "operating income %s", p)
	}

	assert.Equal(t, "1000000", amount(t, doc, "000660", dartfin.Revenue, dartfin.Q1))
	assert.Equal(t, "900000", amount(t, doc, "000660", dartfin.Revenue, dartfin.H1))
	assert.Equal(t, "null", amount(t, doc, "000660", dartfin.Revenue, dartfin.Q2))
	assert.Empty(t, doc["000660"].OperatingIncome)

	_, ok := doc["005930"].Revenue["2025"]
	assert.False(t, ok, "years without filings are left out")

	assert.Equal(t, dartfin.Stats{Companies: 2, RevenueValues: 8, OperatingIncomeValues: 6}, res.Stats)

	require.Len(t, res.Filings, 6)
	assert.Equal(t, "은행_연결", res.Filings[0].Category)
	assert.Equal(t, "연결", res.Filings[1].Category)
	assert.Equal(t, "손익계산서", res.Filings[2].Statement)
	assert.Equal(t, "포괄손익계산서", res.Filings[3].Statement)
	assert.Equal(t, dartfin.H1, res.Filings[3].Period)
	assert.Equal(t, dartfin.FY, res.Filings[5].Period)
	assert.Equal(t, 2, res.Filings[1].Companies)

	out := buf.String()
	assert.Contains(t, out, "[WARN] 000660 (SK하이닉스) 2024: Q2 = H1 (900000) - Q1 (1000000) = -100000, not positive: discarded")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "포괄손익계산서")
	assert.NotContains(t, out, "notes.txt")
	assert.Equal(t, 1, log.Warnings())
}

func TestRun_PositiveQuarters(t *testing.T) {
	res, err := Run(filings(t), DefaultPlan(2024), reports.NewLogger(nil))
	require.NoError(t, err)

	for _, code := range res.Document.Codes() {
		for year, p := range res.Document[code].Revenue {
			for _, q := range []dartfin.Period{dartfin.Q2, dartfin.Q4} {
				v := p.Get(q)
				if v.Valid {
					assert.True(t, v.Decimal.IsPositive(), "%s %s %s", code, year, q)
				}
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	dir := filings(t)
	out := filepath.Join(t.TempDir(), "out", "financials.json")

	var files [][]byte
	for i := 0; i < 2; i++ {
		res, err := Run(dir, DefaultPlan(), reports.NewLogger(nil))
		require.NoError(t, err)
		require.NoError(t, WriteFile(out, res.Document))
		b, err := ioutil.ReadFile(out)
		require.NoError(t, err)
		files = append(files, b)
	}
	assert.Equal(t, string(files[0]), string(files[1]))

	// every stored year carries the six period keys
	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(files[0], &raw))
	for code, company := range raw {
		for _, series := range []string{"revenue", "operatingIncome"} {
			years, ok := company[series].(map[string]interface{})
			require.True(t, ok, "%s %s", code, series)
			for year, periods := range years {
				p, ok := periods.(map[string]interface{})
				require.True(t, ok)
				assert.Len(t, p, 6, "%s %s %s", code, series, year)
				for _, k := range []string{"Q1", "Q2", "Q3", "Q4", "H1", "FY"} {
					_, found := p[k]
					assert.True(t, found, "%s %s %s %s", code, series, year, k)
				}
			}
		}
	}
}

func TestRun_MissingDir(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "missing"), DefaultPlan(), reports.NewLogger(nil))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

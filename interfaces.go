package dartfin

import "github.com/shopspring/decimal"

// Source gives read access to a reconciled time series, either from the JSON
// artifact or from the sqlite mirror. A missing amount returns false and must
// never be read as zero.
type Source interface {
	Codes() []string
	CompanyName(code string) (string, bool)
	Amount(code string, metric Metric, year int, period Period) (decimal.Decimal, bool)
}

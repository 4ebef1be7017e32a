package parsers

import (
	"io"
	"strings"

	"github.com/dude333/dartfin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Column positions on the DART statement extracts (0-based).
const (
	colCode    = 1
	colName    = 2
	colAccount = 10
	colLabel   = 11
	colAmount  = 12

	minFields = 13
)

// FiledRow is one decoded data line of a filing.
type FiledRow struct {
	Code      string // entity code without brackets
	Name      string
	AccountID string
	Label     string
	Amount    decimal.Decimal
}

//
// NewReader decodes a filing stream from EUC-KR (code page 949) to UTF-8.
//
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, korean.EUCKR.NewDecoder())
}

//
// DecodeRow splits a (UTF-8) line into a FiledRow. Returns false for lines
// that are not data rows: less than 13 fields, empty code, account or amount,
// or an amount that is not a number.
//
func DecodeRow(line string) (FiledRow, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return FiledRow{}, false
	}

	row := FiledRow{
		Code:      dartfin.NormalizeCode(fields[colCode]),
		Name:      strings.TrimSpace(fields[colName]),
		AccountID: strings.TrimSpace(fields[colAccount]),
		Label:     strings.TrimSpace(fields[colLabel]),
	}
	amount := strings.TrimSpace(fields[colAmount])
	if row.Code == "" || row.AccountID == "" || amount == "" {
		return FiledRow{}, false
	}

	var err error
	if row.Amount, err = ParseAmount(amount); err != nil {
		return FiledRow{}, false
	}

	return row, true
}

package parsers

import (
	"strings"
	"testing"

	"github.com/dude333/dartfin"
	"github.com/stretchr/testify/assert"
)

// line builds a tab separated extract line with the given code, name,
// account id, label and amount on their fixed columns.
func line(code, name, account, label, amount string) string {
	f := make([]string, 14)
	f[0] = "재무제표"
	f[colCode] = code
	f[colName] = name
	f[3] = "유가증권시장상장법인"
	f[colAccount] = account
	f[colLabel] = label
	f[colAmount] = amount
	return strings.Join(f, "\t")
}

func TestDecodeRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want FiledRow
		ok   bool
	}{
		{
			name: "should work",
			line: line("[005930]", "삼성전자", "ifrs-full_Revenue", "매출액", "1,000,000"),
			want: FiledRow{Code: "005930", Name: "삼성전자", AccountID: "ifrs-full_Revenue", Label: "매출액", Amount: mustAmount("1000000")},
			ok:   true,
		},
		{
			name: "negative amount",
			line: line("[000660]", "SK하이닉스", "dart_OperatingIncomeLoss", "영업손실", "-50"),
			want: FiledRow{Code: "000660", Name: "SK하이닉스", AccountID: "dart_OperatingIncomeLoss", Label: "영업손실", Amount: mustAmount("-50")},
			ok:   true,
		},
		{
			name: "short line",
			line: "a\t[005930]\tb\tc",
		},
		{
			name: "empty code",
			line: line("[]", "x", "ifrs-full_Revenue", "매출액", "10"),
		},
		{
			name: "empty account",
			line: line("[005930]", "x", " ", "매출액", "10"),
		},
		{
			name: "empty amount",
			line: line("[005930]", "x", "ifrs-full_Revenue", "매출액", ""),
		},
		{
			name: "amount is not a number",
			line: line("[005930]", "x", "ifrs-full_Revenue", "매출액", "n/a"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeRow(tt.line)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want.Code, got.Code)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.AccountID, got.AccountID)
			assert.Equal(t, tt.want.Label, got.Label)
			assert.True(t, tt.want.Amount.Equal(got.Amount), "amount %s", got.Amount)
		})
	}
}

func TestParseAmount(t *testing.T) {
	table := []struct {
		in   string
		want string
		err  bool
	}{
		{"1,000,000", "1000000", false},
		{" -1,234 ", "-1234", false},
		{"0", "0", false},
		{"12.5", "12.5", false},
		{"", "", true},
		{",", "", true},
		{"1.2.3", "", true},
		{"abc", "", true},
		{"1e300000000", "", true},
		{"1E5", "", true},
		{"-", "", true},
		{"(1,000)", "", true},
	}
	for _, x := range table {
		got, err := ParseAmount(x.in)
		if x.err {
			assert.ErrorIs(t, err, dartfin.ErrInvalidAmount, x.in)
			continue
		}
		assert.NoError(t, err, x.in)
		assert.Equal(t, x.want, got.String())
	}
}

func TestFold(t *testing.T) {
	list := []struct {
		str string
		exp string
	}{
		{"ITAÚ", "ITAU"},
		{"ＳＫ하이닉스", "SK하이닉스"},
		{"㈜카카오", "(주)카카오"},
		{"삼성전자", "삼성전자"},
	}

	for _, l := range list {
		if Fold(l.str) != l.exp {
			t.Errorf("Expecting %s, received %s", l.exp, Fold(l.str))
		}
	}
}

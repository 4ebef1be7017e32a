package parsers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryYaml = `
- code: "[005930]"
  name: 삼성전자
  ticker: 005930.KS
  aliases: [Samsung Electronics]
- code: "000660"
  name: SK하이닉스
  ticker: 000660.KS
- code: "005380"
  name: 현대자동차
  ticker: 005380.KS
  aliases: [현대차]
`

func TestDirectoryResolve(t *testing.T) {
	file := filepath.Join(t.TempDir(), "symbols.yml")
	require.NoError(t, os.WriteFile(file, []byte(directoryYaml), 0600))

	d, err := LoadDirectory(file)
	require.NoError(t, err)
	assert.Equal(t, []string{"삼성전자", "SK하이닉스", "현대자동차"}, d.Names())

	tests := []struct {
		query string
		code  string
		found bool
	}{
		{"005930", "005930", true},
		{"005930.KS", "005930", true},
		{"000660.ks", "000660", true},
		{"삼성 전자", "005930", true},
		{"samsung electronics", "005930", true},
		{"현대차", "005380", true},
		{"SK하이닉슨", "000660", true}, // fuzzy
		{"035720", "035720", true},    // not listed, code kept
		{"네이버", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			e, ok := d.Resolve(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.code, e.Code)
		})
	}

	_, err = LoadDirectory(filepath.Join(t.TempDir(), "none.yml"))
	assert.Error(t, err)
}

// financial.go
// Reduces a DART statement extract into one candidate per company and metric

package parsers

import (
	"bufio"
	"io"
	"os"

	"github.com/dude333/dartfin"
	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024

// Metrics handled by the file scan, in processing order.
var Metrics = []dartfin.Metric{dartfin.Revenue, dartfin.OperatingIncome}

// FileResult holds the winning candidates of one filing, by entity code.
type FileResult struct {
	Names      map[string]string
	Candidates map[dartfin.Metric]map[string]Candidate
	Lines      int // lines read
	Rows       int // data rows decoded
}

func newFileResult() *FileResult {
	fr := &FileResult{
		Names:      make(map[string]string),
		Candidates: make(map[dartfin.Metric]map[string]Candidate),
	}
	for _, m := range Metrics {
		fr.Candidates[m] = make(map[string]Candidate)
	}
	return fr
}

//
// Add classifies the row and keeps it if it beats the current candidate of
// the same company. Revenue and operating income are reduced independently.
//
func (fr *FileResult) Add(row FiledRow) {
	fr.Rows++
	if row.Name != "" {
		fr.Names[row.Code] = row.Name
	}

	for _, m := range Metrics {
		c, ok := Classify(m, row)
		if !ok {
			continue
		}
		cur, exists := fr.Candidates[m][row.Code]
		if !exists || c.Beats(cur, m) {
			fr.Candidates[m][row.Code] = c
		}
	}
}

//
// ScanFile loops thru the (already decoded) lines of a filing. Lines that are
// not data rows are ignored.
//
func ScanFile(r io.Reader) (*FileResult, error) {
	fr := newFileResult()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		fr.Lines++
		row, ok := DecodeRow(scanner.Text())
		if !ok {
			continue
		}
		fr.Add(row)
	}
	if err := scanner.Err(); err != nil {
		return fr, errors.Wrap(err, "reading lines")
	}

	return fr, nil
}

//
// ScanPath opens an EUC-KR filing and scans it.
//
func ScanPath(file string) (*FileResult, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", file)
	}
	defer fh.Close()

	fr, err := ScanFile(NewReader(fh))
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", file)
	}
	return fr, nil
}

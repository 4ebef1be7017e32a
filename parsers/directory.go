package parsers

import (
	"io/ioutil"
	"strings"

	"github.com/dude333/dartfin"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Entry is one listed company on the symbol directory.
type Entry struct {
	Code    string   `yaml:"code"`
	Name    string   `yaml:"name"`
	Ticker  string   `yaml:"ticker"`
	Aliases []string `yaml:"aliases,omitempty"`
}

// Directory maps free text or tickers to entity codes. The reconciliation
// never uses it; it only serves the command line lookups.
type Directory struct {
	entries []Entry
}

// NewDirectory creates a directory from a list of entries.
func NewDirectory(entries []Entry) *Directory {
	return &Directory{entries: entries}
}

//
// LoadDirectory reads a YAML list of entries, e.g.:
//   - code: "005930"
//     name: 삼성전자
//     ticker: 005930.KS
//     aliases: [삼성, Samsung Electronics]
//
func LoadDirectory(file string) (*Directory, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory %s", file)
	}

	var entries []Entry
	if err = yaml.Unmarshal(b, &entries); err != nil {
		return nil, errors.Wrapf(err, "parsing directory %s", file)
	}

	for i := range entries {
		entries[i].Code = dartfin.NormalizeCode(entries[i].Code)
	}

	return NewDirectory(entries), nil
}

// Names lists the company names.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		names = append(names, e.Name)
	}
	return names
}

//
// Resolve finds the entry for a code ("005930"), a ticker ("005930.KS"), a
// name or an alias. As a last resort the name is matched with FuzzyFind.
// A six digit code not listed on the directory is returned as is.
//
func (d *Directory) Resolve(query string) (Entry, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Entry{}, false
	}

	base := q
	if i := strings.Index(q, "."); i > 0 {
		base = q[:i]
	}
	base = dartfin.NormalizeCode(base)

	if dartfin.IsEntityCode(base) {
		for _, e := range d.entries {
			if e.Code == base {
				return e, true
			}
		}
		return Entry{Code: base, Ticker: q}, true
	}

	key := fix(q)
	for _, e := range d.entries {
		if fix(e.Name) == key || strings.EqualFold(e.Ticker, q) {
			return e, true
		}
		for _, a := range e.Aliases {
			if fix(a) == key {
				return e, true
			}
		}
	}

	if name := FuzzyFind(q, d.Names(), 1); name != "" {
		for _, e := range d.entries {
			if e.Name == name {
				return e, true
			}
		}
	}

	return Entry{}, false
}

package reports

import (
	"encoding/json"
	"io/ioutil"

	"github.com/dude333/dartfin"
	"github.com/pkg/errors"
)

//
// LoadFile reads a document written by the update command.
//
func LoadFile(file string) (dartfin.Document, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", file)
	}

	var doc dartfin.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", file)
	}
	if doc == nil {
		doc = make(dartfin.Document)
	}

	for code, c := range doc {
		if c == nil {
			delete(doc, code)
			continue
		}
		if c.Revenue == nil {
			c.Revenue = make(map[string]*dartfin.Periods)
		}
		if c.OperatingIncome == nil {
			c.OperatingIncome = make(map[string]*dartfin.Periods)
		}
	}

	return doc, nil
}

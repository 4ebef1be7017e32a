package reconcile

import (
	"io/ioutil"
	"path/filepath"

	"github.com/dude333/dartfin"
	"github.com/dude333/dartfin/parsers"
	"github.com/pkg/errors"
)

// Result of a run.
type Result struct {
	Document dartfin.Document
	Stats    dartfin.Stats
	Filings  []parsers.Filing // in application order
}

//
// Run reads the filings found on 'dir' following the plan, strictly one after
// the other, and reconciles them. A filing that cannot be read is reported
// and skipped; only an unreadable directory stops the run.
//
func Run(dir string, plan Plan, log dartfin.Logger) (*Result, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory %s", dir)
	}
	var names []string
	for _, fi := range infos {
		if fi.Mode().IsRegular() {
			names = append(names, fi.Name())
		}
	}

	ctx := NewContext()
	res := &Result{}

	for _, step := range plan.Steps() {
		for _, name := range Locate(names, step) {
			path := filepath.Join(dir, name)

			log.Run("%s", name)
			fr, err := parsers.ScanPath(path)
			if err != nil {
				log.Nok()
				log.Error("%v", err)
				continue
			}
			n := ctx.Apply(step.Year, step.Report.Period, fr)
			log.Ok()
			log.Debug("%s: %d lines, %d rows, %d companies", step, fr.Lines, fr.Rows, n)

			res.Filings = append(res.Filings, parsers.Filing{
				Path:      path,
				Name:      name,
				Year:      step.Year,
				Period:    step.Report.Period,
				Category:  step.Category,
				Statement: step.Statement.Label,
				Companies: n,
			})
		}
	}

	res.Document = ctx.Reconcile(log)
	res.Stats = res.Document.Stats()

	return res, nil
}

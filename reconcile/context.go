package reconcile

import (
	"github.com/dude333/dartfin"
	"github.com/dude333/dartfin/parsers"
)

// PeriodCandidates holds, per filed period, the candidates of one company,
// year and metric in the order they were applied.
type PeriodCandidates map[dartfin.Period][]parsers.Candidate

type companyYear struct {
	code string
	year int
}

//
// Context accumulates the candidates of a single run. It is owned by the run
// and must not be shared between runs.
//
type Context struct {
	names   map[string]string
	entries map[companyYear]map[dartfin.Metric]PeriodCandidates
}

// NewContext returns an empty accumulator.
func NewContext() *Context {
	return &Context{
		names:   make(map[string]string),
		entries: make(map[companyYear]map[dartfin.Metric]PeriodCandidates),
	}
}

//
// Apply adds the candidates of one filing to year/period. A candidate with an
// account id already held for the same company, year, period and metric
// replaces it (later filings win); other account ids are appended and left
// for Reconcile to choose from. Returns the number of companies touched.
//
func (c *Context) Apply(year int, period dartfin.Period, fr *parsers.FileResult) int {
	touched := make(map[string]bool)

	for _, metric := range parsers.Metrics {
		for code, cand := range fr.Candidates[metric] {
			touched[code] = true
			pc := c.periods(code, year, metric)
			pc[period] = supersede(pc[period], cand)
		}
	}

	for code := range touched {
		if name := fr.Names[code]; name != "" {
			c.names[code] = name
		}
	}

	return len(touched)
}

func (c *Context) periods(code string, year int, metric dartfin.Metric) PeriodCandidates {
	k := companyYear{code, year}
	e, ok := c.entries[k]
	if !ok {
		e = make(map[dartfin.Metric]PeriodCandidates)
		c.entries[k] = e
	}
	pc, ok := e[metric]
	if !ok {
		pc = make(PeriodCandidates)
		e[metric] = pc
	}
	return pc
}

func supersede(list []parsers.Candidate, cand parsers.Candidate) []parsers.Candidate {
	for i := range list {
		if list[i].AccountID == cand.AccountID {
			list[i] = cand
			return list
		}
	}
	return append(list, cand)
}

// Candidates returns what was accumulated for code/year/metric.
func (c *Context) Candidates(code string, year int, metric dartfin.Metric) PeriodCandidates {
	e, ok := c.entries[companyYear{code, year}]
	if !ok {
		return nil
	}
	return e[metric]
}

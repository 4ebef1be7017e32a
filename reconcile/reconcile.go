package reconcile

import (
	"sort"
	"strconv"

	"github.com/dude333/dartfin"
	"github.com/dude333/dartfin/parsers"
	"github.com/shopspring/decimal"
)

// Resolved maps a filed period to its chosen amount.
type Resolved map[dartfin.Period]decimal.Decimal

//
// ChooseAccount picks the revenue account id that represents the whole year.
// The pool is made of the ids present on every period with data; if there is
// none, of the ids seen on the largest number of periods. The pool member
// with the highest priority wins (ties: smallest id). Returns false when no
// period has data.
//
func ChooseAccount(pc PeriodCandidates) (string, bool) {
	var sets []map[string]bool
	for _, period := range dartfin.ReportedPeriods {
		if len(pc[period]) == 0 {
			continue
		}
		set := make(map[string]bool)
		for _, c := range pc[period] {
			set[c.AccountID] = true
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return "", false
	}

	var pool []string
	for id := range sets[0] {
		inAll := true
		for _, s := range sets[1:] {
			if !s[id] {
				inAll = false
				break
			}
		}
		if inAll {
			pool = append(pool, id)
		}
	}

	if len(pool) == 0 {
		count := make(map[string]int)
		max := 0
		for _, s := range sets {
			for id := range s {
				count[id]++
				if count[id] > max {
					max = count[id]
				}
			}
		}
		for id, n := range count {
			if n == max {
				pool = append(pool, id)
			}
		}
	}

	sort.Strings(pool)
	best, bestPriority := "", -1
	for _, id := range pool {
		if p := parsers.RevenuePriority(id, ""); p > bestPriority {
			best, bestPriority = id, p
		}
	}

	return best, best != ""
}

//
// ResolveRevenue fixes the account id of the year and, for each filed
// period, keeps the largest amount reported under that id.
//
func ResolveRevenue(pc PeriodCandidates) (string, Resolved, bool) {
	id, ok := ChooseAccount(pc)
	if !ok {
		return "", nil, false
	}

	res := make(Resolved)
	for _, period := range dartfin.ReportedPeriods {
		found := false
		var best decimal.Decimal
		for _, c := range pc[period] {
			if c.AccountID != id {
				continue
			}
			if !found || c.Amount.GreaterThan(best) {
				best, found = c.Amount, true
			}
		}
		if found {
			res[period] = best
		}
	}

	return id, res, true
}

//
// ResolveOperatingIncome keeps, for each filed period, the amount with the
// largest absolute value. No account id consistency is required.
//
func ResolveOperatingIncome(pc PeriodCandidates) Resolved {
	res := make(Resolved)
	for _, period := range dartfin.ReportedPeriods {
		for i, c := range pc[period] {
			if i == 0 || c.Amount.Abs().GreaterThan(res[period].Abs()) {
				res[period] = c.Amount
			}
		}
	}
	return res
}

func (r Resolved) periods() *dartfin.Periods {
	var p dartfin.Periods
	for period, amount := range r {
		p.Set(period, dartfin.NewValue(amount))
	}
	return &p
}

//
// Reconcile resolves every company/year, derives Q2 and Q4 and assembles the
// output document. Rejected derivations are logged as warnings.
//
func (c *Context) Reconcile(log dartfin.Logger) dartfin.Document {
	keys := make([]companyYear, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].code != keys[j].code {
			return keys[i].code < keys[j].code
		}
		return keys[i].year < keys[j].year
	})

	doc := make(dartfin.Document)
	company := func(code string) *dartfin.Company {
		if co, ok := doc[code]; ok {
			return co
		}
		co := dartfin.NewCompany(c.names[code])
		doc[code] = co
		return co
	}

	for _, k := range keys {
		year := strconv.Itoa(k.year)
		e := c.entries[k]

		if _, res, ok := ResolveRevenue(e[dartfin.Revenue]); ok {
			p := res.periods()
			for _, r := range DeriveRevenue(p) {
				log.Warn("%s (%s) %d: %s", k.code, c.names[k.code], k.year, r)
			}
			company(k.code).Revenue[year] = p
		}

		if res := ResolveOperatingIncome(e[dartfin.OperatingIncome]); len(res) > 0 {
			p := res.periods()
			DeriveOperatingIncome(p)
			company(k.code).OperatingIncome[year] = p
		}
	}

	return doc
}

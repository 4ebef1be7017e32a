package reconcile

import (
	"fmt"

	"github.com/dude333/dartfin"
	"github.com/shopspring/decimal"
)

// derivation computes quarter = total - part, from cumulative figures.
type derivation struct {
	quarter, total, part dartfin.Period
}

var derivations = []derivation{
	{dartfin.Q2, dartfin.H1, dartfin.Q1},
	{dartfin.Q4, dartfin.FY, dartfin.Q3},
}

// Rejection describes a derived quarter that was discarded.
type Rejection struct {
	Quarter dartfin.Period
	Total   dartfin.Period
	Part    dartfin.Period
	Values  [2]decimal.Decimal // total, part
	Result  decimal.Decimal
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s = %s (%s) - %s (%s) = %s, not positive: discarded",
		r.Quarter, r.Total, r.Values[0], r.Part, r.Values[1], r.Result)
}

//
// DeriveRevenue sets Q2 (H1 - Q1) and Q4 (FY - Q3) when both operands are
// present and non-zero. A result that is not positive points to mismatched
// filings rather than to a real quarter, so it is left null and returned.
//
func DeriveRevenue(p *dartfin.Periods) []Rejection {
	var rejected []Rejection
	for _, d := range derivations {
		total, part := p.Get(d.total), p.Get(d.part)
		if !total.Valid || !part.Valid || total.Decimal.IsZero() || part.Decimal.IsZero() {
			continue
		}
		q := total.Decimal.Sub(part.Decimal)
		if !q.IsPositive() {
			p.Set(d.quarter, dartfin.Value{})
			rejected = append(rejected, Rejection{
				Quarter: d.quarter,
				Total:   d.total,
				Part:    d.part,
				Values:  [2]decimal.Decimal{total.Decimal, part.Decimal},
				Result:  q,
			})
			continue
		}
		p.Set(d.quarter, dartfin.NewValue(q))
	}
	return rejected
}

//
// DeriveOperatingIncome sets Q2 and Q4 whenever both operands are present;
// operating losses are valid in any quarter.
//
func DeriveOperatingIncome(p *dartfin.Periods) {
	for _, d := range derivations {
		total, part := p.Get(d.total), p.Get(d.part)
		if total.Valid && part.Valid {
			p.Set(d.quarter, dartfin.NewValue(total.Decimal.Sub(part.Decimal)))
		}
	}
}

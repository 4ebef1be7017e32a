package parsers

import (
	"strings"

	"github.com/dude333/dartfin"
	"github.com/shopspring/decimal"
)

// Account priorities. Higher wins when a company reports more than one
// candidate line for the same metric.
const (
	FloorPriority    = 0
	LabelPriority    = 10
	FallbackPriority = 80
	PrefixPriority   = 90
	ExactPriority    = 100
)

// account id, metric and the priority on an exact or a prefix match
type account struct {
	id     string
	metric dartfin.Metric
	exact  int
	prefix int
}

var _accountsTable = []account{
	// Revenue
	{"ifrs-full_Revenue", dartfin.Revenue, ExactPriority, PrefixPriority},
	{"dart_OperatingRevenue", dartfin.Revenue, FallbackPriority, FallbackPriority},
	{"dart_Revenue", dartfin.Revenue, FallbackPriority, FallbackPriority},

	// Operating income (loss)
	{"dart_OperatingIncomeLoss", dartfin.OperatingIncome, ExactPriority, PrefixPriority},
	{"ifrs-full_ProfitLossFromOperatingActivities", dartfin.OperatingIncome, ExactPriority, PrefixPriority},
}

// Label keywords used when the account id is not a known one.
var _labelsTable = map[dartfin.Metric][]string{
	dartfin.Revenue:         {"매출"},
	dartfin.OperatingIncome: {"영업이익", "영업손실"},
}

//
// AccountPriority returns the score of an account line for the metric.
// FloorPriority means the line does not belong to the metric. Pass an empty
// label to score the account id alone.
//
func AccountPriority(metric dartfin.Metric, accountID, label string) int {
	best := FloorPriority
	for _, acc := range _accountsTable {
		if acc.metric != metric {
			continue
		}
		p := FloorPriority
		if accountID == acc.id {
			p = acc.exact
		} else if strings.HasPrefix(accountID, acc.id) {
			p = acc.prefix
		}
		if p > best {
			best = p
		}
	}
	if best > FloorPriority || label == "" {
		return best
	}

	for _, kw := range _labelsTable[metric] {
		if strings.Contains(label, kw) {
			return LabelPriority
		}
	}

	return FloorPriority
}

// RevenuePriority is AccountPriority for revenue lines.
func RevenuePriority(accountID, label string) int {
	return AccountPriority(dartfin.Revenue, accountID, label)
}

// IsRevenue checks the account id (exact or prefix) and the label.
func IsRevenue(accountID, label string) bool {
	return RevenuePriority(accountID, label) > FloorPriority
}

// IsOperatingIncome checks the account id (exact or prefix) and the label.
func IsOperatingIncome(accountID, label string) bool {
	return AccountPriority(dartfin.OperatingIncome, accountID, label) > FloorPriority
}

// Candidate is an account line competing to be "the" figure of a company.
type Candidate struct {
	AccountID string
	Amount    decimal.Decimal
	Priority  int
}

//
// Classify returns the candidate of 'row' for the metric, if any. Revenue
// lines with a zero amount are dropped (a missing figure, not a real one);
// zero is a valid operating income.
//
func Classify(metric dartfin.Metric, row FiledRow) (Candidate, bool) {
	p := AccountPriority(metric, row.AccountID, row.Label)
	if p == FloorPriority {
		return Candidate{}, false
	}
	if metric == dartfin.Revenue && row.Amount.IsZero() {
		return Candidate{}, false
	}

	return Candidate{AccountID: row.AccountID, Amount: row.Amount, Priority: p}, true
}

//
// Beats reports if c should replace 'other': higher priority first; on a tie,
// the larger amount for revenue or the larger absolute amount for operating
// income (losses are negative).
//
func (c Candidate) Beats(other Candidate, metric dartfin.Metric) bool {
	if c.Priority != other.Priority {
		return c.Priority > other.Priority
	}
	if metric == dartfin.OperatingIncome {
		return c.Amount.Abs().GreaterThan(other.Amount.Abs())
	}
	return c.Amount.GreaterThan(other.Amount)
}

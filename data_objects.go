package dartfin

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Value is a nullable amount. It is written to JSON as a plain number or as
// null, never omitted.
type Value struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewValue returns a valid Value.
func NewValue(d decimal.Decimal) Value {
	return Value{Decimal: d, Valid: true}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return []byte(v.Decimal.String()), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*v = Value{}
		return nil
	}
	if !IsPlainNumber(s) {
		return errors.Wrapf(ErrInvalidAmount, "%s", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.Wrapf(ErrInvalidAmount, "%s", s)
	}
	*v = NewValue(d)
	return nil
}

// Periods holds the six figures of one fiscal year.
type Periods struct {
	Q1 Value `json:"Q1"`
	Q2 Value `json:"Q2"`
	Q3 Value `json:"Q3"`
	Q4 Value `json:"Q4"`
	H1 Value `json:"H1"`
	FY Value `json:"FY"`
}

func (p *Periods) field(period Period) *Value {
	switch period {
	case Q1:
		return &p.Q1
	case Q2:
		return &p.Q2
	case Q3:
		return &p.Q3
	case Q4:
		return &p.Q4
	case H1:
		return &p.H1
	case FY:
		return &p.FY
	}
	return nil
}

// Get returns the value of 'period' (invalid if unset or unknown).
func (p *Periods) Get(period Period) Value {
	if f := p.field(period); f != nil {
		return *f
	}
	return Value{}
}

// Set stores v on 'period'; unknown periods are ignored.
func (p *Periods) Set(period Period, v Value) {
	if f := p.field(period); f != nil {
		*f = v
	}
}

// Count returns how many periods are not null.
func (p *Periods) Count() (n int) {
	for _, period := range AllPeriods {
		if p.Get(period).Valid {
			n++
		}
	}
	return
}

// Company is the persisted time series of one entity code. Years are keyed
// by their decimal string ("2024").
type Company struct {
	CompanyName     string              `json:"companyName"`
	Revenue         map[string]*Periods `json:"revenue"`
	OperatingIncome map[string]*Periods `json:"operatingIncome"`
}

// NewCompany returns a company with empty (non-nil) series.
func NewCompany(name string) *Company {
	return &Company{
		CompanyName:     name,
		Revenue:         make(map[string]*Periods),
		OperatingIncome: make(map[string]*Periods),
	}
}

// Series returns the yearly map of a metric.
func (c *Company) Series(metric Metric) map[string]*Periods {
	switch metric {
	case Revenue:
		return c.Revenue
	case OperatingIncome:
		return c.OperatingIncome
	}
	return nil
}

// Years returns the years of a metric in ascending order.
func (c *Company) Years(metric Metric) []int {
	var years []int
	for y := range c.Series(metric) {
		if n, err := strconv.Atoi(y); err == nil {
			years = append(years, n)
		}
	}
	sort.Ints(years)
	return years
}

// Document is the output artifact, keyed by entity code.
type Document map[string]*Company

// Codes returns all entity codes, sorted.
func (d Document) Codes() []string {
	codes := make([]string, 0, len(d))
	for c := range d {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// CompanyName returns the name stored for 'code'.
func (d Document) CompanyName(code string) (string, bool) {
	c, ok := d[code]
	if !ok {
		return "", false
	}
	return c.CompanyName, true
}

// Amount returns the figure for code/metric/year/period, or false if absent.
func (d Document) Amount(code string, metric Metric, year int, period Period) (decimal.Decimal, bool) {
	c, ok := d[code]
	if !ok {
		return decimal.Zero, false
	}
	p, ok := c.Series(metric)[strconv.Itoa(year)]
	if !ok || p == nil {
		return decimal.Zero, false
	}
	v := p.Get(period)
	return v.Decimal, v.Valid
}

// Stats summarizes a document for the operator.
type Stats struct {
	Companies             int
	RevenueValues         int
	OperatingIncomeValues int
}

// Stats counts companies and non-null period values.
func (d Document) Stats() Stats {
	s := Stats{Companies: len(d)}
	for _, c := range d {
		for _, p := range c.Revenue {
			s.RevenueValues += p.Count()
		}
		for _, p := range c.OperatingIncome {
			s.OperatingIncomeValues += p.Count()
		}
	}
	return s
}

package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dude333/dartfin"
)

// ReportType links a filed period to the report name used on file names.
type ReportType struct {
	Period dartfin.Period
	Label  string
}

// Statement is the income statement variant of a filing.
type Statement struct {
	Code  string
	Label string
}

// Plan declares which filings are read and in which order. Categories and
// statements are listed from the lowest to the highest precedence: a filing
// applied later overwrites the figures of an earlier one.
type Plan struct {
	Years      []int
	Reports    []ReportType
	Categories []string
	Statements []Statement
}

// DefaultYears are the fiscal years tracked when none is configured.
var DefaultYears = []int{2024, 2025}

//
// DefaultPlan returns the DART bulk download layout: bank, securities,
// insurance and other financial consolidated filings first, the general
// consolidated filing last; the income statement before the comprehensive
// income statement.
//
func DefaultPlan(years ...int) Plan {
	if len(years) == 0 {
		years = DefaultYears
	}
	return Plan{
		Years: years,
		Reports: []ReportType{
			{dartfin.Q1, "1분기보고서"},
			{dartfin.H1, "반기보고서"},
			{dartfin.Q3, "3분기보고서"},
			{dartfin.FY, "사업보고서"},
		},
		Categories: []string{"은행_연결", "증권_연결", "보험_연결", "금융기타_연결", "연결"},
		Statements: []Statement{
			{"02", "손익계산서"},
			{"03", "포괄손익계산서"},
		},
	}
}

// Step is one (year, report, category, statement) combination of a plan.
type Step struct {
	Year      int
	Report    ReportType
	Category  string
	Statement Statement
}

// Prefix is the file name prefix of the filings of this step, e.g.
// "2024_1분기보고서_02_손익계산서_연결_".
func (s Step) Prefix() string {
	return fmt.Sprintf("%d_%s_%s_%s_%s_", s.Year, s.Report.Label, s.Statement.Code, s.Statement.Label, s.Category)
}

func (s Step) String() string {
	return fmt.Sprintf("%d %s %s %s", s.Year, s.Report.Period, s.Category, s.Statement.Label)
}

//
// Steps enumerates the plan in application order: year, report, category,
// then statement.
//
func (p Plan) Steps() []Step {
	years := append([]int(nil), p.Years...)
	sort.Ints(years)

	var steps []Step
	for _, y := range years {
		for _, r := range p.Reports {
			for _, c := range p.Categories {
				for _, s := range p.Statements {
					steps = append(steps, Step{Year: y, Report: r, Category: c, Statement: s})
				}
			}
		}
	}
	return steps
}

//
// Locate returns the file names (sorted) that belong to the step.
//
func Locate(names []string, s Step) []string {
	prefix := s.Prefix()
	var found []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			found = append(found, n)
		}
	}
	sort.Strings(found)
	return found
}

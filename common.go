package dartfin

import (
	"regexp"
	"strings"
)

// Period is one of the six figures kept per fiscal year. Q1, H1, Q3 and FY are
// filed (cumulative from the start of the year); Q2 and Q4 are derived.
type Period int

const (
	Q1 Period = iota + 1
	Q2
	Q3
	Q4
	H1
	FY
)

var periodNames = [...]string{"", "Q1", "Q2", "Q3", "Q4", "H1", "FY"}

// ReportedPeriods are the periods found in the filings, in filing order.
var ReportedPeriods = []Period{Q1, H1, Q3, FY}

// AllPeriods lists every period key of the output, in output order.
var AllPeriods = []Period{Q1, Q2, Q3, Q4, H1, FY}

func (p Period) String() string {
	if p < Q1 || p > FY {
		return "??"
	}
	return periodNames[p]
}

// Derived is true for quarters that are never filed.
func (p Period) Derived() bool {
	return p == Q2 || p == Q4
}

// ParsePeriod converts "Q1".."Q4", "H1" or "FY" (case insensitive).
func ParsePeriod(s string) (Period, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i := Q1; i <= FY; i++ {
		if periodNames[i] == s {
			return i, nil
		}
	}
	return 0, ErrInvalidPeriod
}

// Metric is the financial line being reconciled.
type Metric int

const (
	Revenue Metric = iota + 1
	OperatingIncome
)

func (m Metric) String() string {
	switch m {
	case Revenue:
		return "revenue"
	case OperatingIncome:
		return "operatingIncome"
	}
	return "unknown"
}

// NormalizeCode strips the brackets and blanks around an entity code,
// e.g. "[005930]" => "005930".
func NormalizeCode(code string) string {
	return strings.Trim(strings.TrimSpace(code), "[] ")
}

// IsEntityCode checks if code is a six digit listed company code.
func IsEntityCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

var plainNumber = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// IsPlainNumber reports whether s is an optional sign, digits and an optional
// decimal part. Exponent notation ("1e300000000") is refused.
func IsPlainNumber(s string) bool {
	return plainNumber.MatchString(s)
}

// HundredMillion is the local reporting unit (억) used by report readers.
const HundredMillion = 100000000

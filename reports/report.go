package reports

import (
	"sort"

	"github.com/dude333/dartfin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Sentiment of the commentary attached to a report.
type Sentiment string

// Sentiments returned by the commentary service.
const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Market signals.
const (
	Sunny  = "맑음"
	Cloudy = "구름"
	Rainy  = "흐림"
)

// Annotation is the commentary produced elsewhere for a company. It is
// carried through to the rendered report untouched.
type Annotation struct {
	Sentiment Sentiment `json:"sentiment" yaml:"sentiment"`
	Narrative string    `json:"narrative" yaml:"narrative"`
}

// Point is a quarterly figure in 억원 (100 million won). Valid is false when
// the quarter is not available; a reported zero is valid.
type Point struct {
	Label string
	Value float64
	Valid bool
}

// YearSeries holds the four quarters of a year.
type YearSeries struct {
	Year   int
	Points []Point
}

// Annual is the sum of the known quarters of a year, in 억원.
type Annual struct {
	Year  int
	Value float64
}

// Report is the per-company revenue report.
type Report struct {
	Code       string
	Name       string
	Current    YearSeries
	Previous   YearSeries
	Operating  YearSeries // operating income of the current year
	QoQ        float64
	YoY        float64
	Annual     []Annual
	Signal     string
	Annotation Annotation
}

const maxAnnualYears = 5

var quarters = []dartfin.Period{dartfin.Q1, dartfin.Q2, dartfin.Q3, dartfin.Q4}

type quarterKey struct {
	year    int
	quarter int // 0..3
}

//
// Build assembles the report of 'code' from the quarterly revenue found on
// src for the given years. Quarters with a zero or missing figure are left
// out of the changes and the annual totals.
//
func Build(src dartfin.Source, code string, years []int, ann Annotation) (*Report, error) {
	name, ok := src.CompanyName(code)
	if !ok {
		return nil, errors.Wrapf(dartfin.ErrNotFound, "company %s", code)
	}

	revenue := make(map[quarterKey]float64)
	var keys []quarterKey
	for _, y := range years {
		for i, q := range quarters {
			d, ok := src.Amount(code, dartfin.Revenue, y, q)
			if !ok || d.IsZero() {
				continue
			}
			k := quarterKey{y, i}
			if _, dup := revenue[k]; !dup {
				keys = append(keys, k)
			}
			revenue[k] = toEok(d)
		}
	}
	if len(keys) == 0 {
		return nil, errors.Wrapf(dartfin.ErrNoData, "revenue of %s", code)
	}

	// latest first
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].quarter > keys[j].quarter
	})

	latest := keys[0]
	prevQuarter := quarterKey{latest.year, latest.quarter - 1}
	if latest.quarter == 0 {
		prevQuarter = quarterKey{latest.year - 1, 3}
	}
	yearAgo := quarterKey{latest.year - 1, latest.quarter}

	r := &Report{
		Code:       code,
		Name:       name,
		QoQ:        computeChange(revenue[latest], revenue[prevQuarter]),
		YoY:        computeChange(revenue[latest], revenue[yearAgo]),
		Annotation: ann,
	}

	series := func(year int, values func(i int) (float64, bool)) YearSeries {
		s := YearSeries{Year: year}
		for i, q := range quarters {
			v, ok := values(i)
			s.Points = append(s.Points, Point{Label: q.String(), Value: v, Valid: ok})
		}
		return s
	}
	revenueOf := func(year int) func(i int) (float64, bool) {
		return func(i int) (float64, bool) {
			v, ok := revenue[quarterKey{year, i}]
			return v, ok
		}
	}
	r.Current = series(latest.year, revenueOf(latest.year))
	r.Previous = series(latest.year-1, revenueOf(latest.year-1))
	r.Operating = series(latest.year, func(i int) (float64, bool) {
		d, ok := src.Amount(code, dartfin.OperatingIncome, latest.year, quarters[i])
		if !ok {
			return 0, false
		}
		return toEok(d), true
	})

	r.Annual = annualTotals(revenue)
	r.Signal = MarketSignal(r.QoQ, r.YoY, ann.Sentiment)

	return r, nil
}

func annualTotals(revenue map[quarterKey]float64) []Annual {
	totals := make(map[int]float64)
	for k, v := range revenue {
		totals[k.year] += v
	}

	var annual []Annual
	for y, v := range totals {
		annual = append(annual, Annual{Year: y, Value: v})
	}
	sort.Slice(annual, func(i, j int) bool { return annual[i].Year < annual[j].Year })
	if len(annual) > maxAnnualYears {
		annual = annual[len(annual)-maxAnnualYears:]
	}
	return annual
}

//
// computeChange returns the relative change from prev to current, or 0 if
// any of them is zero.
//
func computeChange(current, prev float64) float64 {
	if current == 0 || prev == 0 {
		return 0
	}
	return (current - prev) / prev
}

//
// MarketSignal summarizes growth and sentiment: 맑음 when both changes are
// up and the sentiment is positive, 흐림 when everything points down, 구름
// otherwise.
//
func MarketSignal(qoq, yoy float64, s Sentiment) string {
	if qoq > 0 && yoy > 0 && s == Positive {
		return Sunny
	}
	if qoq < 0 && yoy < 0 && s == Negative {
		return Rainy
	}
	return Cloudy
}

func toEok(d decimal.Decimal) float64 {
	return d.Div(decimal.NewFromInt(dartfin.HundredMillion)).InexactFloat64()
}

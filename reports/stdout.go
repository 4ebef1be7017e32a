package reports

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//
// ToStdout prints the report as plain text, numbers grouped the Korean way.
//
func ToStdout(r *Report, w io.Writer) error {
	p := message.NewPrinter(language.Korean)
	var err error
	printf := func(format string, v ...interface{}) {
		if err == nil {
			_, err = p.Fprintf(w, format, v...)
		}
	}

	printf("%s (%s)\n", r.Name, r.Code)
	printf("%s\n", strings.Repeat("=", 44))
	printf("신호: %s   QoQ: %+.1f%%   YoY: %+.1f%%\n\n", r.Signal, r.QoQ*100, r.YoY*100)

	// years as text, the printer would group their digits
	printf("%-8s %12s %12s %14s\n", "억원", strconv.Itoa(r.Previous.Year), strconv.Itoa(r.Current.Year), "영업이익")
	for i, pt := range r.Current.Points {
		printf("%-8s %12s %12s %14s\n", pt.Label,
			amount(p, r.Previous.Points[i]), amount(p, pt), amount(p, r.Operating.Points[i]))
	}

	printf("\n연간 매출액 (억원)\n")
	for _, a := range r.Annual {
		printf("%-8s %12.1f\n", strconv.Itoa(a.Year), a.Value)
	}

	if r.Annotation.Narrative != "" {
		printf("\n%s\n", r.Annotation.Narrative)
	}

	return err
}

// amount formats a point, "-" when it is not available.
func amount(p *message.Printer, pt Point) string {
	if !pt.Valid {
		return "-"
	}
	return p.Sprintf("%.1f", pt.Value)
}

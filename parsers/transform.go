package parsers

import (
	"strings"
	"unicode"

	"github.com/dude333/dartfin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// ParseAmount converts a reported amount (e.g., "1,234,567" or "-50") into a
// decimal. Thousands separators and blanks are dropped. Anything but a sign,
// digits and an optional decimal part returns dartfin.ErrInvalidAmount.
//
func ParseAmount(text string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if !dartfin.IsPlainNumber(clean) {
		return decimal.Zero, dartfin.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, dartfin.ErrInvalidAmount
	}
	return d, nil
}

//
// Fold applies compatibility folding and drops accents, e.g. "ＳＫ하이닉스"
// into "SK하이닉스", "㈜" into "(주)" and "ITAÚ" into "ITAU". Hangul
// syllables come back composed.
//
func Fold(original string) (result string) {
	isMn := func(r rune) bool {
		return unicode.Is(unicode.Mn, r) // Mn: nonspacing marks
	}

	t := transform.Chain(norm.NFKD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ = transform.String(t, original)

	return
}

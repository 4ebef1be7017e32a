package parsers

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

//
// FuzzyMatch measures the Levenshtein distance between
// the source and the list, returning true if the distance
// is less or equal the 'distance'.
//
func FuzzyMatch(src string, list []string, distance int) bool {
	return FuzzyFind(src, list, distance) != ""
}

//
// FuzzyFind returns the most approximate string inside 'list' that
// matches the 'src' string within a maximum 'distance'.
//
func FuzzyFind(source string, targets []string, maxDistance int) (found string) {
	src := fix(source)
	if src == "" {
		return
	}
	for _, target := range targets {
		trg := fix(target)
		if trg == "" {
			continue
		}
		if strings.HasPrefix(src, trg) || strings.HasPrefix(trg, src) {
			return target
		}
		distance := fuzzy.LevenshteinDistance(src, trg)
		if distance <= maxDistance {
			maxDistance = distance
			found = target
		}
	}

	return
}

// fix drops the corporation markers and blanks that filers add or omit
// (e.g., "(주)삼성전자", "삼성 전자 주식회사").
func fix(txt string) string {
	txt = strings.ToUpper(Fold(txt))
	for _, s := range []string{"(주)", "㈜", "주식회사"} {
		txt = strings.ReplaceAll(txt, s, "")
	}
	return strings.Join(strings.Fields(txt), "")
}

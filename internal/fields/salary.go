package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jobsift/jobsift/internal/record"
)

// The salary patterns are ordered from most to least explicit. Each has
// exactly two numeric capture groups (min, max); symbol groups are
// resolved separately from the matched span.
var salaryPatterns = []*regexp.Regexp{
	// $90,000 - $120,000 / ₹8L - ₹12L / €50k-60k
	regexp.MustCompile(`(?i)([$₹€£¥])(\d+(?:[,.]\d+)*)\s*(?:k|lakhs?|l)?\s*(?:-|–|to)\s*[$₹€£¥]?(\d+(?:[,.]\d+)*)\s*(?:k|lakhs?|l)?`),
	// 50,000 - 70,000 € (symbol trailing)
	regexp.MustCompile(`(?i)(\d+(?:[,.]\d+)*)\s*(?:k|lakhs?|l)?\s*(?:-|–|to)\s*(\d+(?:[,.]\d+)*)\s*(?:k|lakhs?|l)?\s*([$₹€£¥])`),
	// salary: 8 - 12 lakhs / compensation range 90000 to 120000
	regexp.MustCompile(`(?i)(?:salary|compensation|pay|ctc|package)(?:\s+range)?[\s:]*[$₹€£¥]?(\d+(?:[,.]\d+)*)\s*(?:k|lakhs?|l)?\s*(?:-|–|to)\s*[$₹€£¥]?(\d+(?:[,.]\d+)*)\s*(?:k|lakhs?|l)?`),
	// 60000 - 80000 per year/month
	regexp.MustCompile(`(?i)(\d+(?:[,.]\d+)*)\s*(?:-|–|to)\s*(\d+(?:[,.]\d+)*)\s*per\s+(?:year|annum|pa|month)`),
}

// currencySymbols is ordered so nearby-symbol resolution is deterministic
// when more than one symbol appears around a match.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"₹", "INR"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
}

func symbolCode(s string) string {
	for _, c := range currencySymbols {
		if c.symbol == s {
			return c.code
		}
	}
	return ""
}

var (
	salaryMultiplierK    = regexp.MustCompile(`(?i)\d\s*k\b`)
	salaryMultiplierLakh = regexp.MustCompile(`(?i)\d\s*(?:lakhs?|l)\b`)
	inrMention           = regexp.MustCompile(`(?i)\binr\b|\brupees?\b|\brs\.?\s`)
)

// Salary extracts a salary range. Multipliers (K, lakh) are detected from
// the matched span, the currency from the symbol map or an explicit INR
// mention, and unresolved values stay zero. An inverted range is left as-is
// here; the validator swaps it.
func Salary(text string) record.Salary {
	out := record.Salary{Currency: "INR"}
	for _, re := range salaryPatterns {
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		span := text[m[0]:m[1]]
		groups := re.FindStringSubmatch(text)

		var minRaw, maxRaw, symbol string
		for _, g := range groups[1:] {
			switch {
			case g == "":
			case symbolCode(g) != "":
				symbol = g
			case minRaw == "":
				minRaw = g
			default:
				maxRaw = g
			}
		}
		if minRaw == "" || maxRaw == "" {
			continue
		}

		mult := 1.0
		if salaryMultiplierK.MatchString(span) {
			mult = 1_000
		} else if salaryMultiplierLakh.MatchString(span) {
			mult = 100_000
		}
		minVal, err1 := parseAmount(minRaw)
		maxVal, err2 := parseAmount(maxRaw)
		if err1 != nil || err2 != nil {
			continue
		}
		out.Min = int(minVal * mult)
		out.Max = int(maxVal * mult)

		if symbol != "" {
			out.Currency = symbolCode(symbol)
		} else {
			// No symbol in the pattern: peek around the match.
			lo, hi := m[0]-10, m[1]+10
			if lo < 0 {
				lo = 0
			}
			if hi > len(text) {
				hi = len(text)
			}
			for _, c := range currencySymbols {
				if strings.Contains(text[lo:hi], c.symbol) {
					out.Currency = c.code
					break
				}
			}
		}
		if inrMention.MatchString(span) {
			out.Currency = "INR"
		}
		break
	}
	return out
}

// parseAmount reads a number that may carry thousands separators. A comma
// or dot followed by exactly three digits is treated as a separator,
// otherwise as a decimal point.
func parseAmount(s string) (float64, error) {
	if i := strings.LastIndexAny(s, ",."); i >= 0 && len(s)-i-1 == 3 {
		s = strings.Map(func(r rune) rune {
			if r == ',' || r == '.' {
				return -1
			}
			return r
		}, s)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	return strconv.ParseFloat(s, 64)
}

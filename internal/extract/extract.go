// Package extract implements the deterministic field extractors used by the
// chat dialogue: amount, category, date and free-text details. All functions
// take lowercased message text, never return errors, and report a miss as a
// false second return.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"kharcha/internal/core"
	"kharcha/internal/lexicon"
)

var (
	amountRegex   = regexp.MustCompile(`\b\d{1,6}\b`)
	wordRegex     = regexp.MustCompile(`[a-z]+|\d+`)
	monthDayRegex = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s*(\d{1,2})\b`)
)

// Amount returns the first standalone run of 1 to 6 digits. Longer digit
// runs, decimals and thousands separators are not amounts.
func Amount(text string) (int64, bool) {
	m := amountRegex.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Category scans the alias table in declaration order and returns the
// canonical name of the first alias present as a whole word in text.
func Category(text string) (string, bool) {
	words := wordSet(text)
	for _, a := range lexicon.CategoryAliases {
		if _, ok := words[a.Keyword]; ok {
			return a.Canonical, true
		}
	}
	return "", false
}

// Date resolves a single date mention relative to now: "today"/"aaj",
// "yesterday"/"kal", or the first "<mon> <day>" pattern in the current year.
func Date(text string, now time.Time) (core.Date, bool) {
	words := wordSet(text)
	for _, w := range lexicon.TodayWords {
		if _, ok := words[w]; ok {
			return core.DateOf(now), true
		}
	}
	for _, w := range lexicon.YesterdayWords {
		if _, ok := words[w]; ok {
			return core.DateOf(now).AddDays(-1), true
		}
	}

	if m := monthDayRegex.FindStringSubmatch(text); m != nil {
		return monthDayDate(m[1], m[2], now)
	}
	return core.Date{}, false
}

// MonthDays returns every "<mon> <day>" mention in text resolved to the
// current year, in message order. The summary engine pairs two of these into
// a range.
func MonthDays(text string, now time.Time) []core.Date {
	var out []core.Date
	for _, m := range monthDayRegex.FindAllStringSubmatch(text, -1) {
		if d, ok := monthDayDate(m[1], m[2], now); ok {
			out = append(out, d)
		}
	}
	return out
}

// Details derives the free-text label: digit runs, category aliases, month
// tokens and filler words are dropped, the rest is title-cased. Empty
// remainder is a miss.
func Details(text string) (string, bool) {
	var kept []string
	for _, tok := range wordRegex.FindAllString(text, -1) {
		if isDigits(tok) {
			continue
		}
		if _, ok := lexicon.LookupCategory(tok); ok {
			continue
		}
		if lexicon.IsMonth(tok) {
			continue
		}
		if isFiller(tok) {
			continue
		}
		kept = append(kept, titleWord(tok))
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, " "), true
}

func monthDayDate(monthName, dayStr string, now time.Time) (core.Date, bool) {
	month := lexicon.MonthNumber[monthName]
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return core.Date{}, false
	}
	d := core.NewDate(now.Year(), month, day)
	// Reject days that normalized into the next month (feb 30 and friends).
	if d.Day() != day || int(d.Time.Month()) != month {
		return core.Date{}, false
	}
	return d, true
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordRegex.FindAllString(text, -1) {
		set[w] = struct{}{}
	}
	return set
}

func isDigits(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(tok) > 0
}

func isFiller(tok string) bool {
	for _, f := range lexicon.FillerWords {
		if tok == f {
			return true
		}
	}
	return false
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// Package lexicon holds the fixed lexical tables shared by the extraction
// and query engines: category aliases, month names, stop words and filler
// words. Everything here is immutable configuration loaded once at startup.
package lexicon

// Canonical category names as stored in the ledger.
const (
	CategoryBasicFixed = "Basic Fixed Expenses"
	CategoryVegetables = "Daily Vegetables"
	CategoryOutdoor    = "Outdoor Food Items"
	CategoryGroceries  = "Other Groceries Items"
	CategoryExtra      = "Extra/Additional Expenses"
)

// Alias maps one lowercase keyword to a canonical category name.
type Alias struct {
	Keyword   string
	Canonical string
}

// CategoryAliases is scanned front-to-back: when a message contains several
// alias keywords, the first entry declared here wins. Keep it a slice, never
// a map, so the tie-break stays deterministic.
var CategoryAliases = []Alias{
	{"basic", CategoryBasicFixed},
	{"fixed", CategoryBasicFixed},
	{"daily", CategoryVegetables},
	{"vegetable", CategoryVegetables},
	{"sabzi", CategoryVegetables},
	{"outdoor", CategoryOutdoor},
	{"food", CategoryOutdoor},
	{"grocery", CategoryGroceries},
	{"extra", CategoryExtra},
}

// MonthNumber maps 3-letter month names to month numbers.
var MonthNumber = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4,
	"may": 5, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// StopWords are stripped from a "last spend" query before keyword matching.
var StopWords = map[string]struct{}{
	"last": {}, "time": {}, "when": {}, "did": {}, "i": {},
	"spent": {}, "spend": {}, "on": {}, "kab": {}, "hua": {}, "to": {},
}

// FillerWords are removed from free text before deriving the details slot:
// command verbs, prepositions, currency words and relative-date keywords.
var FillerWords = []string{
	"add", "expense", "kharcha", "likho", "spent", "spend", "paid", "buy", "bought",
	"on", "for", "of", "the", "a", "an", "in", "at", "to",
	"rs", "rupees", "rupee", "inr",
	"ka", "ke", "ki", "ko", "me", "mein", "liya", "kiya", "hua",
	"today", "yesterday", "aaj", "kal",
	"yes", "no",
}

// AddTriggers start (or restart) the add-expense dialogue.
var AddTriggers = []string{"add", "kharcha", "likho"}

// Relative-date keywords, English and Hindi-transliterated.
var (
	TodayWords     = []string{"today", "aaj"}
	YesterdayWords = []string{"yesterday", "kal"}
)

// LookupCategory returns the canonical name for an alias keyword, matching
// the declaration order of CategoryAliases.
func LookupCategory(keyword string) (string, bool) {
	for _, a := range CategoryAliases {
		if a.Keyword == keyword {
			return a.Canonical, true
		}
	}
	return "", false
}

// IsMonth reports whether token is one of the 3-letter month names.
func IsMonth(token string) bool {
	_, ok := MonthNumber[token]
	return ok
}

// IsStopWord reports whether token is stripped from last-spend queries.
func IsStopWord(token string) bool {
	_, ok := StopWords[token]
	return ok
}

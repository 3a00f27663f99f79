package lexicon

import "testing"

func TestLookupCategory(t *testing.T) {
	for _, a := range CategoryAliases {
		got, ok := LookupCategory(a.Keyword)
		if !ok {
			t.Fatalf("LookupCategory(%q) not found", a.Keyword)
		}
		if got != a.Canonical {
			t.Fatalf("LookupCategory(%q) = %q, want %q", a.Keyword, got, a.Canonical)
		}
	}

	if _, ok := LookupCategory("petrol"); ok {
		t.Fatal("unknown keyword should not resolve")
	}
}

func TestMonthNumberCoversYear(t *testing.T) {
	if len(MonthNumber) != 12 {
		t.Fatalf("MonthNumber has %d entries", len(MonthNumber))
	}
	seen := map[int]bool{}
	for name, n := range MonthNumber {
		if n < 1 || n > 12 {
			t.Fatalf("month %q out of range: %d", name, n)
		}
		if seen[n] {
			t.Fatalf("month number %d mapped twice", n)
		}
		seen[n] = true
	}
}

func TestStopWords(t *testing.T) {
	for _, w := range []string{"last", "when", "kab", "spent"} {
		if !IsStopWord(w) {
			t.Fatalf("expected stop word: %q", w)
		}
	}
	if IsStopWord("potato") {
		t.Fatal("potato must survive stop-word stripping")
	}
}

func TestAliasKeywordsAreLowercase(t *testing.T) {
	for _, a := range CategoryAliases {
		for _, r := range a.Keyword {
			if r >= 'A' && r <= 'Z' {
				t.Fatalf("alias keyword %q is not lowercase", a.Keyword)
			}
		}
	}
}

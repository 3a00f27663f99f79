package extract

import (
	"testing"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/lexicon"
)

var now = time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC)

func TestAmount(t *testing.T) {
	cases := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"add 250 sabzi today potato", 250, true},
		{"spent 5 on tea", 5, true},
		{"999999 rent", 999999, true},
		{"paid 1234567 crore", 0, false}, // seven digits is not an amount
		{"10 then 20", 10, true},         // first match wins
		{"no digits here", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := Amount(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Amount(%q) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCategoryWholeTable(t *testing.T) {
	for _, a := range lexicon.CategoryAliases {
		got, ok := Category("spent on " + a.Keyword + " items")
		if !ok || got != a.Canonical {
			t.Fatalf("Category with %q = (%q, %v), want %q", a.Keyword, got, ok, a.Canonical)
		}
	}
}

func TestCategory(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"add 250 sabzi today potato", lexicon.CategoryVegetables, true},
		// "basic" is declared before "food", so it wins a mixed message.
		{"food and basic stuff", lexicon.CategoryBasicFixed, true},
		{"seafood platter", "", false}, // substring is not a whole word
		{"nothing relevant", "", false},
	}

	for _, tc := range cases {
		got, ok := Category(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Category(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		input string
		want  core.Date
		ok    bool
	}{
		{"add 250 sabzi today potato", core.NewDate(2025, 12, 15), true},
		{"aaj ka kharcha", core.NewDate(2025, 12, 15), true},
		{"yesterday milk", core.NewDate(2025, 12, 14), true},
		{"kal doodh liya", core.NewDate(2025, 12, 14), true},
		{"dec 10 grocery", core.NewDate(2025, 12, 10), true},
		{"on jan 1", core.NewDate(2025, 1, 1), true},
		// today beats a later month/day mention
		{"today and dec 10", core.NewDate(2025, 12, 15), true},
		{"feb 30 nonsense", core.Date{}, false},
		{"dec 0", core.Date{}, false},
		{"no date here", core.Date{}, false},
	}

	for _, tc := range cases {
		got, ok := Date(tc.input, now)
		if ok != tc.ok {
			t.Fatalf("Date(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if ok && !got.Equal(tc.want.Time) {
			t.Fatalf("Date(%q) = %s, want %s", tc.input, got.Display(), tc.want.Display())
		}
	}
}

func TestMonthDays(t *testing.T) {
	ds := MonthDays("summary dec 10 to dec 15", now)
	if len(ds) != 2 {
		t.Fatalf("MonthDays found %d dates, want 2", len(ds))
	}
	if !ds[0].Equal(core.NewDate(2025, 12, 10).Time) || !ds[1].Equal(core.NewDate(2025, 12, 15).Time) {
		t.Fatalf("MonthDays = %s, %s", ds[0].Display(), ds[1].Display())
	}

	if got := MonthDays("summary today", now); len(got) != 0 {
		t.Fatalf("MonthDays on relative phrase = %d dates", len(got))
	}
}

func TestDetails(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"add 250 sabzi today potato", "Potato", true},
		{"add 40 food dosa and chutney", "Dosa And Chutney", true},
		{"kal 100 grocery atta ka packet", "Atta Packet", true},
		// every add trigger is a command verb, not a detail
		{"kharcha likho 100 sabzi aaj doodh", "Doodh", true},
		{"add 250 sabzi today", "", false}, // nothing survives stripping
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := Details(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Details(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

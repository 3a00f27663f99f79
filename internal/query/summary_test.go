package query

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"kharcha/internal/ledger"
	"kharcha/internal/ledger/memory"
)

var testNow = func() time.Time {
	return time.Date(2025, 12, 15, 9, 0, 0, 0, time.UTC)
}

type countingReader struct {
	rows  []ledger.Row
	reads int
}

func (c *countingReader) ReadAll(context.Context) ([]ledger.Row, error) {
	c.reads++
	return c.rows, nil
}

type failingReader struct{}

func (failingReader) ReadAll(context.Context) ([]ledger.Row, error) {
	return nil, errors.New("sheet unavailable")
}

func row(date, category, amount, details string) ledger.Row {
	return ledger.Row{
		Year: date[6:], Month: "Dec", Date: date,
		Category: category, Amount: amount, Details: details, Owner: "Saurav",
	}
}

func TestSummaryToday(t *testing.T) {
	store := memory.New()
	store.Seed(
		row("15/12/2025", "Daily Vegetables", "250", "Potato"),
		row("14/12/2025", "Outdoor Food Items", "120", "Dosa"),
	)
	e := New(store, testNow)

	got, err := e.Summary(context.Background(), "summary today")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(got, "15 Dec 2025 | Daily Vegetables | ₹250 | Potato") {
		t.Fatalf("missing today's row in reply:\n%s", got)
	}
	if strings.Contains(got, "Dosa") {
		t.Fatalf("yesterday's row leaked into today's summary:\n%s", got)
	}
	if !strings.Contains(got, "Total Spent: ₹250") {
		t.Fatalf("missing total line:\n%s", got)
	}
}

func TestSummaryEmptyStillReadsOnce(t *testing.T) {
	r := &countingReader{}
	e := New(r, testNow)

	got, err := e.Summary(context.Background(), "summary today")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got != NoExpensesReply {
		t.Fatalf("reply = %q, want %q", got, NoExpensesReply)
	}
	if r.reads != 1 {
		t.Fatalf("ledger read %d times, want 1", r.reads)
	}
}

func TestSummaryNoPeriodSkipsLedger(t *testing.T) {
	r := &countingReader{}
	e := New(r, testNow)

	got, err := e.Summary(context.Background(), "summary please")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got != NoPeriodReply {
		t.Fatalf("reply = %q, want %q", got, NoPeriodReply)
	}
	if r.reads != 0 {
		t.Fatalf("ledger read %d times, want 0", r.reads)
	}
}

func TestSummaryRangeNormalized(t *testing.T) {
	store := memory.New()
	store.Seed(row("12/12/2025", "Other Groceries Items", "300", "Atta"))
	e := New(store, testNow)

	// Endpoints typed in descending order still produce an ascending range.
	got, err := e.Summary(context.Background(), "summary dec 15 to dec 10")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(got, "Summary: 10 Dec 2025 to 15 Dec 2025") {
		t.Fatalf("range not normalized:\n%s", got)
	}
	if !strings.Contains(got, "Atta") {
		t.Fatalf("row inside range missing:\n%s", got)
	}
}

func TestSummaryCategoryFilter(t *testing.T) {
	store := memory.New()
	store.Seed(
		row("15/12/2025", "Daily Vegetables", "250", "Potato"),
		row("15/12/2025", "Outdoor Food Items", "120", "Dosa"),
	)
	e := New(store, testNow)

	got, err := e.Summary(context.Background(), "sabzi summary today")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(got, "Potato") || strings.Contains(got, "Dosa") {
		t.Fatalf("category filter not applied:\n%s", got)
	}
}

func TestSummaryLastMonth(t *testing.T) {
	store := memory.New()
	store.Seed(
		row("01/11/2025", "Daily Vegetables", "100", "Onion"),
		row("30/11/2025", "Daily Vegetables", "200", "Tomato"),
		row("01/12/2025", "Daily Vegetables", "300", "Potato"),
	)
	e := New(store, testNow)

	got, err := e.Summary(context.Background(), "summary last month")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(got, "Summary: 01 Nov 2025 to 30 Nov 2025") {
		t.Fatalf("wrong period:\n%s", got)
	}
	if !strings.Contains(got, "Total Spent: ₹300") {
		t.Fatalf("wrong total:\n%s", got)
	}
	if strings.Contains(got, "Potato") {
		t.Fatalf("december row leaked:\n%s", got)
	}
}

func TestSummarySkipsMalformedRows(t *testing.T) {
	store := memory.New()
	store.Seed(
		ledger.Row{Date: "garbage", Amount: "250", Details: "Bad"},
		row("15/12/2025", "Daily Vegetables", "not-a-number", "Also Bad"),
		row("15/12/2025", "Daily Vegetables", "50", "Good"),
	)
	e := New(store, testNow)

	got, err := e.Summary(context.Background(), "summary today")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(got, "Good") || !strings.Contains(got, "Total Spent: ₹50") {
		t.Fatalf("malformed rows not skipped cleanly:\n%s", got)
	}
}

func TestSummaryLedgerFailurePropagates(t *testing.T) {
	e := New(failingReader{}, testNow)
	if _, err := e.Summary(context.Background(), "summary today"); err == nil {
		t.Fatal("expected ledger failure to propagate")
	}
}

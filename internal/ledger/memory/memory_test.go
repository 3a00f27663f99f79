package memory

import (
	"context"
	"errors"
	"testing"

	"kharcha/internal/core"
	"kharcha/internal/ledger"
)

func TestAppendAndReadAll(t *testing.T) {
	s := New()
	ctx := context.Background()

	e := core.Expense{
		Date:     core.NewDate(2025, 12, 10),
		Category: "Daily Vegetables",
		Amount:   250,
		Details:  "Potato",
		Owner:    "Saurav",
	}
	if err := s.Append(ctx, e); err != nil {
		t.Fatalf("Append: %v", err)
	}

	rows, err := s.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	got, err := rows[0].Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != e {
		t.Fatalf("round trip mismatch: %+v != %+v", got, e)
	}
	if rows[0].Year != "2025" || rows[0].Month != "Dec" || rows[0].Date != "10/12/2025" {
		t.Fatalf("raw row fields wrong: %+v", rows[0])
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	s := New()
	err := s.Append(context.Background(), core.Expense{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	rows, _ := s.ReadAll(context.Background())
	if len(rows) != 0 {
		t.Fatalf("invalid append stored %d rows", len(rows))
	}
}

func TestParseMalformedRow(t *testing.T) {
	bad := []ledger.Row{
		{Date: "not a date", Amount: "10"},
		{Date: "10/12/2025", Amount: "ten"},
	}
	for _, r := range bad {
		if _, err := r.Parse(); !errors.Is(err, core.ErrMalformedRow) {
			t.Fatalf("Parse(%+v) = %v, want ErrMalformedRow", r, err)
		}
	}
}

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type (
	// Date is a calendar day. The time component is always midnight UTC.
	Date struct {
		time.Time
	}

	// Expense is one ledger record. Rows are append-only: the engine never
	// updates or deletes what it has written.
	Expense struct {
		Date     Date
		Category string
		Amount   int64 // whole rupees
		Details  string
		Owner    string
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyDetails  = errors.New("empty details")
	ErrMalformedRow  = errors.New("malformed ledger row")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseLedgerDate parses the DD/MM/YYYY form stored in ledger rows.
func ParseLedgerDate(s string) (Date, error) {
	t, err := time.Parse("02/01/2006", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// Ledger returns the DD/MM/YYYY form stored in ledger rows.
func (d Date) Ledger() string {
	return d.Format("02/01/2006")
}

// Display returns the DD Mon YYYY form used in replies.
func (d Date) Display() string {
	return d.Format("02 Jan 2006")
}

// MonthName returns the 3-letter month name stored in the Month column.
func (d Date) MonthName() string {
	return d.Format("Jan")
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// Validate checks that every field required for an append is present.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if e.Amount > 999999 {
		return fmt.Errorf("%w: %d exceeds six digits", ErrInvalidAmount, e.Amount)
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.Details) == "" {
		return ErrEmptyDetails
	}
	return nil
}

// FormatAmount renders a rupee amount for replies.
func FormatAmount(amount int64) string {
	return "₹" + strconv.FormatInt(amount, 10)
}

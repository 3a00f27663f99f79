// Package ledger defines the ports to the external append-only expense
// table. Backends return raw rows; parsing into domain records happens in
// Row.Parse so a malformed row is a value, not a panic, and query loops can
// skip it.
package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"kharcha/internal/core"
)

// Row is one raw ledger row in storage column order:
// Year, Month, Date, Category, Price/Amount, Things Details, Name.
type Row struct {
	Year     string
	Month    string
	Date     string
	Category string
	Amount   string
	Details  string
	Owner    string
}

// Ports for outbound adapters.
type (
	Reader interface {
		ReadAll(ctx context.Context) ([]Row, error)
	}

	Writer interface {
		Append(ctx context.Context, e core.Expense) error
	}
)

// Parse converts the raw row into a domain record. An unparsable date or a
// non-numeric amount yields core.ErrMalformedRow; callers scanning the whole
// ledger skip such rows instead of aborting.
func (r Row) Parse() (core.Expense, error) {
	d, err := core.ParseLedgerDate(r.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: date %q", core.ErrMalformedRow, r.Date)
	}
	amount, err := strconv.ParseInt(strings.TrimSpace(r.Amount), 10, 64)
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: amount %q", core.ErrMalformedRow, r.Amount)
	}
	return core.Expense{
		Date:     d,
		Category: strings.TrimSpace(r.Category),
		Amount:   amount,
		Details:  strings.TrimSpace(r.Details),
		Owner:    strings.TrimSpace(r.Owner),
	}, nil
}

// RowOf builds the raw row appended for a domain record.
func RowOf(e core.Expense) Row {
	return Row{
		Year:     strconv.Itoa(e.Date.Year()),
		Month:    e.Date.MonthName(),
		Date:     e.Date.Ledger(),
		Category: e.Category,
		Amount:   strconv.FormatInt(e.Amount, 10),
		Details:  e.Details,
		Owner:    e.Owner,
	}
}

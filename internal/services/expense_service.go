// Package services orchestrates expense commits across the primary ledger
// and the event stream.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"kharcha/internal/amqp"
	"kharcha/internal/core"
	"kharcha/internal/ledger"
)

// EventPublisher publishes saved-expense events. *amqp.Client implements it.
type EventPublisher interface {
	PublishExpenseSaved(ctx context.Context, msg *amqp.ExpenseSavedMessage) error
}

// ExpenseService appends confirmed expenses to the primary ledger and then
// announces them on the event stream. The append is the source of truth: a
// publish failure is logged, never surfaced to the user.
type ExpenseService struct {
	ledger ledger.Writer
	events EventPublisher
}

func NewExpenseService(w ledger.Writer, events EventPublisher) *ExpenseService {
	return &ExpenseService{ledger: w, events: events}
}

// Save commits one confirmed expense.
func (s *ExpenseService) Save(ctx context.Context, e core.Expense) error {
	if err := s.ledger.Append(ctx, e); err != nil {
		return fmt.Errorf("append expense: %w", err)
	}

	if s.events == nil {
		return nil
	}
	if err := s.events.PublishExpenseSaved(ctx, amqp.NewExpenseSavedMessage(e)); err != nil {
		// The expense is already in the ledger; the mirror can catch up later.
		slog.ErrorContext(ctx, "Failed to publish expense saved event",
			"error", err,
			"date", e.Date.Ledger(),
			"category", e.Category)
	}
	return nil
}

// Close closes whichever collaborators are closable.
func (s *ExpenseService) Close() error {
	var errs []error
	if c, ok := s.ledger.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("ledger: %w", err))
		}
	}
	if c, ok := s.events.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}
	return nil
}

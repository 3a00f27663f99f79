// Package worker mirrors confirmed expenses from the event stream into the
// Google Sheets ledger, so chat turns never block on the Sheets API.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/amqp"
	"kharcha/internal/ledger"
)

// MirrorWorker appends each saved-expense event to a secondary ledger.
type MirrorWorker struct {
	mirror ledger.Writer
}

func NewMirrorWorker(mirror ledger.Writer) *MirrorWorker {
	return &MirrorWorker{mirror: mirror}
}

// HandleExpenseSaved processes one saved-expense event. A returned error
// makes the consumer requeue the message.
func (w *MirrorWorker) HandleExpenseSaved(ctx context.Context, msg *amqp.ExpenseSavedMessage) error {
	exp, err := msg.Expense()
	if err != nil {
		// Unparsable events can never succeed; log and drop rather than
		// requeue forever.
		slog.ErrorContext(ctx, "Dropping malformed expense event",
			"error", err, "date", msg.Date)
		return nil
	}

	if err := w.mirror.Append(ctx, exp); err != nil {
		return fmt.Errorf("mirror expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense mirrored",
		"date", exp.Date.Ledger(),
		"category", exp.Category,
		"amount", exp.Amount)
	return nil
}

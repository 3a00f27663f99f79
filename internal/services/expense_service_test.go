package services

import (
	"context"
	"errors"
	"testing"

	"kharcha/internal/amqp"
	"kharcha/internal/core"
	"kharcha/internal/ledger/memory"
)

type fakePublisher struct {
	published []*amqp.ExpenseSavedMessage
	err       error
}

func (f *fakePublisher) PublishExpenseSaved(_ context.Context, msg *amqp.ExpenseSavedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func validExpense() core.Expense {
	return core.Expense{
		Date:     core.NewDate(2025, 12, 10),
		Category: "Daily Vegetables",
		Amount:   250,
		Details:  "Potato",
		Owner:    "Saurav",
	}
}

func TestSaveAppendsAndPublishes(t *testing.T) {
	store := memory.New()
	pub := &fakePublisher{}
	svc := NewExpenseService(store, pub)

	if err := svc.Save(context.Background(), validExpense()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rows, _ := store.ReadAll(context.Background())
	if len(rows) != 1 {
		t.Fatalf("ledger has %d rows, want 1", len(rows))
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.published))
	}
	if pub.published[0].Date != "10/12/2025" {
		t.Fatalf("event date = %q", pub.published[0].Date)
	}
}

func TestSavePublishFailureIsNotFatal(t *testing.T) {
	store := memory.New()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewExpenseService(store, pub)

	if err := svc.Save(context.Background(), validExpense()); err != nil {
		t.Fatalf("publish failure must not fail the save: %v", err)
	}

	rows, _ := store.ReadAll(context.Background())
	if len(rows) != 1 {
		t.Fatalf("ledger has %d rows, want 1", len(rows))
	}
}

func TestSaveWithoutPublisher(t *testing.T) {
	svc := NewExpenseService(memory.New(), nil)
	if err := svc.Save(context.Background(), validExpense()); err != nil {
		t.Fatalf("Save without publisher: %v", err)
	}
}

func TestSaveAppendFailurePropagates(t *testing.T) {
	svc := NewExpenseService(memory.New(), &fakePublisher{})
	// Invalid expense fails ledger validation before any publish.
	if err := svc.Save(context.Background(), core.Expense{}); err == nil {
		t.Fatal("expected append failure")
	}
}

func TestClose(t *testing.T) {
	svc := NewExpenseService(memory.New(), nil)
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

package amqp

import (
	"encoding/json"
	"time"

	"kharcha/internal/core"
)

// ExpenseSavedMessage announces one confirmed ledger append. It carries the
// full record so the mirror worker can append to Google Sheets without
// reading the local store back.
type ExpenseSavedMessage struct {
	Date      string    `json:"date"` // DD/MM/YYYY
	Category  string    `json:"category"`
	Amount    int64     `json:"amount"`
	Details   string    `json:"details"`
	Owner     string    `json:"owner"`
	Timestamp time.Time `json:"timestamp"`
}

// NewExpenseSavedMessage builds the message for a saved expense.
func NewExpenseSavedMessage(e core.Expense) *ExpenseSavedMessage {
	return &ExpenseSavedMessage{
		Date:      e.Date.Ledger(),
		Category:  e.Category,
		Amount:    e.Amount,
		Details:   e.Details,
		Owner:     e.Owner,
		Timestamp: time.Now(),
	}
}

// Expense converts the message back into a domain record.
func (m *ExpenseSavedMessage) Expense() (core.Expense, error) {
	d, err := core.ParseLedgerDate(m.Date)
	if err != nil {
		return core.Expense{}, err
	}
	return core.Expense{
		Date:     d,
		Category: m.Category,
		Amount:   m.Amount,
		Details:  m.Details,
		Owner:    m.Owner,
	}, nil
}

// ToJSON converts the message to JSON bytes.
func (m *ExpenseSavedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseSavedMessageFromJSON creates a message from JSON bytes.
func ExpenseSavedMessageFromJSON(data []byte) (*ExpenseSavedMessage, error) {
	var msg ExpenseSavedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

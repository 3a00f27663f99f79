// Package chat routes incoming messages by intent and drives the
// slot-filling dialogue that turns free text into confirmed ledger records.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/extract"
	"kharcha/internal/lexicon"
	"kharcha/internal/query"
)

const (
	FallbackReply      = "You can add expenses or ask for summaries."
	ConfirmAgainReply  = "Please reply yes to save or no to cancel."
	CancelledReply     = "Okay, cancelled. Nothing was saved."
	PromptAmountReply  = "How much did you spend? Send the amount in rupees."
	PromptCategory     = "Which category? (basic, sabzi, food, grocery or extra)"
	PromptDateReply    = "For which date? Say today, yesterday, or something like dec 10."
	PromptDetailsReply = "What was it for? Add a short detail."
)

var wordRegex = regexp.MustCompile(`\w+`)

// Saver commits one confirmed expense. The only externally visible side
// effect of the dialogue is a single Save per confirmed record.
type Saver interface {
	Save(ctx context.Context, e core.Expense) error
}

// Engine holds per-conversation dialogue state and dispatches each message
// to the add-expense dialogue or the query engine.
type Engine struct {
	sessions *Store
	queries  *query.Engine
	saver    Saver
	owner    string
	now      func() time.Time
}

func NewEngine(sessions *Store, queries *query.Engine, saver Saver, owner string, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		sessions: sessions,
		queries:  queries,
		saver:    saver,
		owner:    owner,
		now:      now,
	}
}

// HandleMessage processes one incoming message for one conversation and
// returns the reply. Intent priority is fixed: summary, then last-spend,
// then a pending confirmation, then an add trigger, then an in-progress add
// dialogue, else the fallback. Query intents beating "add" and confirm
// replies beating a fresh trigger are deliberate, documented choices.
func (e *Engine) HandleMessage(ctx context.Context, conversationID, raw string) (string, error) {
	msg := strings.ToLower(strings.TrimSpace(raw))
	sess := e.sessions.Get(conversationID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.LastActive = e.now()

	words := make(map[string]struct{})
	for _, w := range wordRegex.FindAllString(msg, -1) {
		words[w] = struct{}{}
	}

	switch {
	case hasWord(words, "summary"):
		return e.queries.Summary(ctx, msg)

	case hasWord(words, "last") || hasWord(words, "when"):
		return e.queries.LastSpend(ctx, msg)

	case sess.Mode == ModeConfirm:
		return e.handleConfirm(ctx, conversationID, sess, msg)

	case hasAnyWord(words, lexicon.AddTriggers):
		// A fresh trigger always restarts: any prior partial entry is gone.
		sess.reset()
		sess.Mode = ModeAdd
		return e.fillSlots(ctx, conversationID, sess, msg), nil

	case sess.Mode == ModeAdd:
		return e.fillSlots(ctx, conversationID, sess, msg), nil

	default:
		return FallbackReply, nil
	}
}

// fillSlots runs all four extractors over msg, keeps the first value each
// slot ever received, and prompts for the first slot still missing. With all
// four filled the dialogue moves to confirmation.
func (e *Engine) fillSlots(ctx context.Context, conversationID string, sess *Session, msg string) string {
	if sess.Amount == 0 {
		if v, ok := extract.Amount(msg); ok {
			sess.Amount = v
		}
	}
	if sess.Category == "" {
		if v, ok := extract.Category(msg); ok {
			sess.Category = v
		}
	}
	if sess.Date.IsZero() {
		if v, ok := extract.Date(msg, e.now()); ok {
			sess.Date = v
		}
	}
	if sess.Details == "" {
		if v, ok := extract.Details(msg); ok {
			sess.Details = v
		}
	}

	if !sess.complete() {
		switch {
		case sess.Amount == 0:
			return PromptAmountReply
		case sess.Category == "":
			return PromptCategory
		case sess.Date.IsZero():
			return PromptDateReply
		default:
			return PromptDetailsReply
		}
	}

	sess.Mode = ModeConfirm
	slog.InfoContext(ctx, "Dialogue complete, awaiting confirmation",
		"conversation", conversationID,
		"amount", sess.Amount,
		"category", sess.Category,
		"date", sess.Date.Ledger())
	return fmt.Sprintf(
		"Please confirm this expense:\nDate: %s\nCategory: %s\nAmount: %s\nDetails: %s\nReply yes to save or no to cancel.",
		sess.Date.Display(), sess.Category, core.FormatAmount(sess.Amount), sess.Details)
}

func (e *Engine) handleConfirm(ctx context.Context, conversationID string, sess *Session, msg string) (string, error) {
	switch msg {
	case "yes", "y":
		exp := core.Expense{
			Date:     sess.Date,
			Category: sess.Category,
			Amount:   sess.Amount,
			Details:  sess.Details,
			Owner:    e.owner,
		}
		// A failed save keeps the session intact so the user can retry the
		// confirmation once the ledger is reachable again.
		if err := e.saver.Save(ctx, exp); err != nil {
			return "", fmt.Errorf("save expense: %w", err)
		}
		slog.InfoContext(ctx, "Expense saved",
			"conversation", conversationID,
			"amount", exp.Amount,
			"category", exp.Category,
			"date", exp.Date.Ledger())
		reply := fmt.Sprintf("Saved! %s for %s on %s.",
			core.FormatAmount(exp.Amount), exp.Category, exp.Date.Display())
		sess.reset()
		return reply, nil

	case "no", "n":
		sess.reset()
		return CancelledReply, nil

	default:
		return ConfirmAgainReply, nil
	}
}

func hasWord(words map[string]struct{}, w string) bool {
	_, ok := words[w]
	return ok
}

func hasAnyWord(words map[string]struct{}, candidates []string) bool {
	for _, c := range candidates {
		if hasWord(words, c) {
			return true
		}
	}
	return false
}

package query

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"kharcha/internal/core"
	"kharcha/internal/lexicon"
)

const NoMatchReply = "No matching expense found."

var wordRegex = regexp.MustCompile(`\w+`)

// LastSpend answers "when did I last spend on X". Stop words are stripped
// from the message; any remaining keyword appearing as a substring of a
// row's details makes that row a candidate, and the most recent candidate
// wins. Two candidates on the same date resolve to the row appended later.
func (e *Engine) LastSpend(ctx context.Context, msg string) (string, error) {
	var keywords []string
	for _, w := range wordRegex.FindAllString(msg, -1) {
		if !lexicon.IsStopWord(w) {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return NoMatchReply, nil
	}

	rows, err := e.reader.ReadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("read ledger: %w", err)
	}

	var (
		best    *core.Expense
		skipped int
	)
	for _, r := range rows {
		details := strings.ToLower(r.Details)
		if !matchesAny(details, keywords) {
			continue
		}
		exp, err := r.Parse()
		if err != nil {
			skipped++
			continue
		}
		if best == nil || !exp.Date.Before(best.Date.Time) {
			cand := exp
			best = &cand
		}
	}
	if skipped > 0 {
		slog.WarnContext(ctx, "Skipped malformed ledger rows", "count", skipped, "operation", "last_spend")
	}

	if best == nil {
		return NoMatchReply, nil
	}

	return fmt.Sprintf("Last time spent on %s\n📅 Date: %s\n📂 Category: %s\n💰 Amount: %s",
		best.Details, best.Date.Display(), best.Category, core.FormatAmount(best.Amount)), nil
}

func matchesAny(details string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(details, k) {
			return true
		}
	}
	return false
}

package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"kharcha/internal/core"
	"kharcha/internal/extract"
)

const (
	NoPeriodReply   = "Please specify a valid summary period."
	NoExpensesReply = "No expenses found for this period."
)

// Summary parses a temporal phrase and optional category filter out of msg,
// scans the ledger and renders a listing with a total. msg must already be
// lowercased by the router.
func (e *Engine) Summary(ctx context.Context, msg string) (string, error) {
	start, end, ok := e.resolvePeriod(msg)
	if !ok {
		return NoPeriodReply, nil
	}
	category, _ := extract.Category(msg)

	rows, err := e.reader.ReadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("read ledger: %w", err)
	}

	var (
		total   int64
		lines   []string
		skipped int
	)
	for _, r := range rows {
		exp, err := r.Parse()
		if err != nil {
			skipped++
			continue
		}
		if exp.Date.Before(start.Time) || exp.Date.After(end.Time) {
			continue
		}
		// Stored categories are already canonical, so the filter is an
		// exact match, not another alias scan.
		if category != "" && exp.Category != category {
			continue
		}
		total += exp.Amount
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %s",
			exp.Date.Display(), exp.Category, core.FormatAmount(exp.Amount), exp.Details))
	}
	if skipped > 0 {
		slog.WarnContext(ctx, "Skipped malformed ledger rows", "count", skipped, "operation", "summary")
	}

	if len(lines) == 0 {
		return NoExpensesReply, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Summary: %s to %s\n", start.Display(), end.Display())
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total Spent: %s", core.FormatAmount(total))
	return b.String(), nil
}

// resolvePeriod maps the message's temporal phrase to an inclusive date
// range. First match wins: today, yesterday, this month, last month, then
// exactly two "<mon> <day>" mentions as endpoints. The endpoints are always
// normalized ascending no matter the order the user typed them.
func (e *Engine) resolvePeriod(msg string) (core.Date, core.Date, bool) {
	today := core.DateOf(e.now())

	switch {
	case containsAny(msg, "today", "aaj"):
		return today, today, true
	case containsAny(msg, "yesterday", "kal"):
		y := today.AddDays(-1)
		return y, y, true
	case strings.Contains(msg, "this month"):
		return core.NewDate(today.Year(), int(today.Time.Month()), 1), today, true
	case strings.Contains(msg, "last month"):
		firstOfThis := core.NewDate(today.Year(), int(today.Time.Month()), 1)
		lastOfPrev := firstOfThis.AddDays(-1)
		firstOfPrev := core.NewDate(lastOfPrev.Year(), int(lastOfPrev.Time.Month()), 1)
		return firstOfPrev, lastOfPrev, true
	}

	if dates := extract.MonthDays(msg, e.now()); len(dates) == 2 {
		start, end := dates[0], dates[1]
		if start.After(end.Time) {
			start, end = end, start
		}
		return start, end, true
	}
	return core.Date{}, core.Date{}, false
}

func containsAny(msg string, words ...string) bool {
	for _, w := range words {
		if containsWord(msg, w) {
			return true
		}
	}
	return false
}

// containsWord is a whole-word substring check, so "kal" does not fire on
// "kalam".
func containsWord(msg, word string) bool {
	idx := 0
	for {
		i := strings.Index(msg[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		startOK := i == 0 || !isWordByte(msg[i-1])
		end := i + len(word)
		endOK := end == len(msg) || !isWordByte(msg[end])
		if startOK && endOK {
			return true
		}
		idx = i + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

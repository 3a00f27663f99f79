// Package storage is the sqlite ledger backend. It is the fast local
// primary when the Google Sheets API is not on the request path; a mirror
// worker copies confirmed rows to Sheets asynchronously.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kharcha/internal/core"
	"kharcha/internal/ledger"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ ledger.Reader = (*SQLiteRepository)(nil)
	_ ledger.Writer = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadAll implements ledger.Reader. Rows come back in insertion order so the
// last-spend tie-break (later appended row wins) matches the Sheets backend.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]ledger.Row, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT year, month, date, category, amount, details, owner FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []ledger.Row
	for rows.Next() {
		var lr ledger.Row
		if err := rows.Scan(&lr.Year, &lr.Month, &lr.Date, &lr.Category, &lr.Amount, &lr.Details, &lr.Owner); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}
	return out, nil
}

// Append implements ledger.Writer.
func (r *SQLiteRepository) Append(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	lr := ledger.RowOf(e)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (year, month, date, category, amount, details, owner) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lr.Year, lr.Month, lr.Date, lr.Category, lr.Amount, lr.Details, lr.Owner)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	id, _ := res.LastInsertId()
	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", id,
		"date", lr.Date,
		"category", lr.Category,
		"amount", lr.Amount)
	return nil
}

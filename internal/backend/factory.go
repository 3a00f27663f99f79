package backend

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/config"
	gsheet "kharcha/internal/ledger/google"
	"kharcha/internal/ledger/memory"
	"kharcha/internal/storage"
)

// Create builds the ledger backend named by cfg.DataBackend.
func Create(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("create sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite ledger", "path", cfg.SQLiteDBPath)
		return &Result{Backend: repo, Cleanup: repo.Close}, nil

	case SheetsBackend:
		cli, err := gsheet.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
		if err != nil {
			return nil, fmt.Errorf("create sheets backend: %w", err)
		}
		logger.Info("Initialized Google Sheets ledger",
			"spreadsheet_id", cfg.GoogleSpreadsheetID,
			"sheet", cfg.GoogleSheetName)
		return &Result{Backend: cli, Cleanup: func() error { return nil }}, nil

	default:
		store := memory.New()
		logger.Info("Initialized memory ledger")
		return &Result{Backend: store, Cleanup: func() error { return nil }}, nil
	}
}

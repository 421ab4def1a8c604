package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists completed simulation runs so `timeinmarket history` can
// list them later. It sits strictly downstream of the engine: only final
// results go in, nothing here feeds back into a simulation.
type Store struct {
	db *sql.DB
}

// RunRecord is one completed simulation run.
type RunRecord struct {
	Identifier string
	Symbol     string
	Name       string
	Schedule   string
	Amount     string
	StartDate  string
	EndDate    string
	Purchases  int
	Invested   string
	FinalValue string
	ProfitPct  string
}

// RunWithMeta adds the storage-assigned fields.
type RunWithMeta struct {
	RunRecord
	RowID     int64
	CreatedAt string
}

func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("db path is required")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=3000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma %s: %w", p, err)
		}
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    identifier TEXT NOT NULL,
    symbol TEXT NOT NULL,
    name TEXT,
    schedule TEXT NOT NULL,
    amount TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    purchases INTEGER NOT NULL,
    invested TEXT NOT NULL,
    final_value TEXT NOT NULL,
    profit_pct TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SaveRun records a completed simulation.
func (s *Store) SaveRun(ctx context.Context, run RunRecord) error {
	if strings.TrimSpace(run.Symbol) == "" {
		return fmt.Errorf("run symbol is required")
	}
	if strings.TrimSpace(run.Schedule) == "" {
		return fmt.Errorf("run schedule is required")
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (identifier, symbol, name, schedule, amount, start_date, end_date,
                  purchases, invested, final_value, profit_pct)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, run.Identifier, run.Symbol, run.Name, run.Schedule, run.Amount,
		run.StartDate, run.EndDate, run.Purchases, run.Invested, run.FinalValue, run.ProfitPct)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunWithMeta, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, identifier, symbol, name, schedule, amount, start_date, end_date,
       purchases, invested, final_value, profit_pct, created_at
FROM runs
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunWithMeta
	for rows.Next() {
		var r RunWithMeta
		var created time.Time
		if err := rows.Scan(&r.RowID, &r.Identifier, &r.Symbol, &r.Name, &r.Schedule,
			&r.Amount, &r.StartDate, &r.EndDate, &r.Purchases,
			&r.Invested, &r.FinalValue, &r.ProfitPct, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = created.Format("2006-01-02 15:04")
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

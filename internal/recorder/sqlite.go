package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"BounceSentry/internal/model"
)

// SQLiteRecorder persists scan runs and their signals to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so readers (dashboards, ad-hoc queries) don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			run_id      TEXT PRIMARY KEY,
			started_at  INTEGER NOT NULL,
			finished_at INTEGER NOT NULL,
			attempted   INTEGER,
			succeeded   INTEGER,
			failed      INTEGER,
			signals     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       TEXT NOT NULL,
			symbol       TEXT NOT NULL,
			price        REAL,
			rsi          REAL,
			volume_ratio REAL,
			confidence   REAL,
			target       REAL,
			stop_loss    REAL,
			label        TEXT,
			reason       TEXT,
			signal_date  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_run ON signals(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON signals(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun writes the run row and all its signals in one transaction.
func (r *SQLiteRecorder) RecordRun(rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO scan_runs
		(run_id, started_at, finished_at, attempted, succeeded, failed, signals)
		VALUES (?,?,?,?,?,?,?)`,
		rep.ID, rep.StartedAt.Unix(), rep.FinishedAt.Unix(),
		rep.Stats.Attempted, rep.Stats.Succeeded, rep.Stats.Failed, rep.Stats.Signals,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, sig := range rep.Signals {
		if _, err := tx.Exec(`INSERT INTO signals
			(run_id, symbol, price, rsi, volume_ratio, confidence, target, stop_loss, label, reason, signal_date)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			rep.ID, sig.Symbol, sig.Price, sig.RSI, sig.VolumeRatio,
			sig.Confidence, sig.Target, sig.StopLoss, sig.Label, sig.Reason,
			sig.Date.Format("2006-01-02"),
		); err != nil {
			return fmt.Errorf("insert signal %s: %w", sig.Symbol, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

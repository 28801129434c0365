package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/SnowSquire/function-type-analyzer/internal/model"
)

// ErrNoRuns is returned when a query finds no stored runs for a target.
var ErrNoRuns = errors.New("no stored runs for target")

// HistoryDB stores the aggregate results of past analysis runs in SQLite.
// One database file serves all targets; runs are keyed by the absolute
// target path so different source trees keep separate histories.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the specified directory.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "fta.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports a single writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Each row is the aggregate result of one analysis run.
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		files_analyzed INTEGER NOT NULL,
		markup_count INTEGER NOT NULL,
		plain_count INTEGER NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_root ON runs(root);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord is one stored analysis run.
type RunRecord struct {
	ID            int64
	Root          string
	Timestamp     time.Time
	FilesAnalyzed int
	MarkupCount   int
	PlainCount    int
}

// TotalFunctions returns the total function count of the stored run.
func (r RunRecord) TotalFunctions() int {
	return r.MarkupCount + r.PlainCount
}

// SaveRun stores the aggregate result of a completed run.
// The full report, including per-function records, is kept as JSON so
// future commands can dig into it without schema changes.
func (hdb *HistoryDB) SaveRun(ctx context.Context, report *model.AnalysisReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO runs (root, timestamp, files_analyzed, markup_count, plain_count, report_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := hdb.db.ExecContext(ctx, query,
		report.Root,
		report.DateAnalyzed.UTC(),
		report.FilesAnalyzed,
		report.MarkupProducingCount,
		report.PlainCount,
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return res.LastInsertId()
}

// ListRuns returns stored runs for a target, newest first.
// A limit of zero or less returns all runs.
func (hdb *HistoryDB) ListRuns(ctx context.Context, root string, limit int) ([]RunRecord, error) {
	query := `
	SELECT id, root, timestamp, files_analyzed, markup_count, plain_count
	FROM runs
	WHERE root = ?
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{root}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Root, &r.Timestamp, &r.FilesAnalyzed, &r.MarkupCount, &r.PlainCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRuns, root)
	}

	return records, nil
}

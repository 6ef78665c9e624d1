package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"diary-agent/internal/model"
	"diary-agent/internal/report/repository"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists reports in a SQLite database.
type Store struct {
	db *sql.DB
}

var _ repository.ReportRepository = &Store{}

// Open opens (or creates) the report database in dataDir and runs pending
// migrations. Pass ":memory:" as dataDir for an in-memory database (tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "reports.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Single connection avoids "database is locked" under concurrent writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a report and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, report model.Report) (model.Report, error) {
	themes, err := json.Marshal(report.KeyThemes)
	if err != nil {
		return model.Report{}, fmt.Errorf("encoding key themes: %w", err)
	}
	feedback, err := json.Marshal(report.Feedback)
	if err != nil {
		return model.Report{}, fmt.Errorf("encoding feedback: %w", err)
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (user_id, start_date, end_date, sentiment_score, key_themes, feedback, summary, entry_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.UserID, report.StartDate, report.EndDate, report.SentimentScore,
		string(themes), string(feedback), report.Summary, report.EntryCount,
		report.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return model.Report{}, fmt.Errorf("inserting report: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Report{}, fmt.Errorf("reading report id: %w", err)
	}
	report.ID = id

	return report, nil
}

// List returns the user's report summaries, newest first.
func (s *Store) List(ctx context.Context, userID string) ([]model.ReportSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, start_date, end_date, sentiment_score, created_at
		FROM reports
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]model.ReportSummary, 0)
	for rows.Next() {
		var summary model.ReportSummary
		var createdAt string
		if err := rows.Scan(&summary.ID, &summary.StartDate, &summary.EndDate, &summary.SentimentScore, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning report summary: %w", err)
		}
		summary.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// Get returns one full report by id, or repository.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (model.Report, error) {
	var report model.Report
	var themes, feedback, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, start_date, end_date, sentiment_score, key_themes, feedback, summary, entry_count, created_at
		FROM reports
		WHERE id = ?`,
		id,
	).Scan(&report.ID, &report.UserID, &report.StartDate, &report.EndDate, &report.SentimentScore,
		&themes, &feedback, &report.Summary, &report.EntryCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Report{}, fmt.Errorf("reading report: %w", err)
	}

	if err := json.Unmarshal([]byte(themes), &report.KeyThemes); err != nil {
		return model.Report{}, fmt.Errorf("decoding key themes: %w", err)
	}
	if err := json.Unmarshal([]byte(feedback), &report.Feedback); err != nil {
		return model.Report{}, fmt.Errorf("decoding feedback: %w", err)
	}
	report.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return report, nil
}

// migrate applies embedded SQL migrations that have not run yet.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

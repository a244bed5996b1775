package storage

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/clock"
)

// DefaultDocumentName is the row the catalog document is stored in
const DefaultDocumentName = "monsters"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	name       TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// OpenSQLite opens a database at path with WAL journaling and a busy timeout
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // nolint:errcheck // already failing
		return nil, errors.Wrapf(err, "failed to ping sqlite database %s", path)
	}
	return db, nil
}

// SQLiteConfig configures a SQLite-backed store
type SQLiteConfig struct {
	DB    *sql.DB
	Name  string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DB == nil {
		vb.RequiredField("DB")
	}
	return vb.Build()
}

type sqliteStore struct {
	db    *sql.DB
	name  string
	clock clock.Clock
}

// NewSQLiteStore creates a store keeping the document in one row of the
// documents table, creating the table if needed
func NewSQLiteStore(ctx context.Context, cfg *SQLiteConfig) (Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sqlite store config")
	}

	if _, err := cfg.DB.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, errors.Wrap(err, "failed to create documents table")
	}

	s := &sqliteStore{
		db:    cfg.DB,
		name:  cfg.Name,
		clock: cfg.Clock,
	}
	if s.name == "" {
		s.name = DefaultDocumentName
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	return s, nil
}

func (s *sqliteStore) Read(ctx context.Context) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, s.name).Scan(&body)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read document %s", s.name)
	}
	return body, nil
}

func (s *sqliteStore) Write(ctx context.Context, data []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback() // nolint:errcheck // no-op after commit
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		s.name, data, s.clock.Now().UnixMilli())
	if err != nil {
		return errors.Wrapf(err, "failed to write document %s", s.name)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit document %s", s.name)
	}
	return nil
}

// updatedAt returns when the document was last written, as Unix
// milliseconds, or zero if it never was
func updatedAt(ctx context.Context, db *sql.DB, name string) (int64, error) {
	var at int64
	err := db.QueryRowContext(ctx, `SELECT updated_at FROM documents WHERE name = ?`, name).Scan(&at)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "failed to read timestamp for %s", name)
	}
	return at, nil
}

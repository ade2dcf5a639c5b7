package recorder

import (
	"fmt"
	"log"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

var schemas = map[string][]string{
	"sqlite": {
		"PRAGMA journal_mode=WAL",
		`CREATE TABLE IF NOT EXISTS query_log (
			id          TEXT PRIMARY KEY,
			mode        TEXT NOT NULL,
			term        TEXT NOT NULL,
			matches     INTEGER NOT NULL,
			answered_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_query_log_ts ON query_log(answered_at)`,
	},
	"postgres": {
		`CREATE TABLE IF NOT EXISTS query_log (
			id          UUID PRIMARY KEY,
			mode        TEXT NOT NULL,
			term        TEXT NOT NULL,
			matches     INTEGER NOT NULL,
			answered_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_query_log_ts ON query_log(answered_at)`,
	},
}

// SQLRecorder journals queries to SQLite or PostgreSQL.
type SQLRecorder struct {
	db *sqlx.DB
	mu sync.Mutex
}

// NewSQLRecorder opens the database and creates the journal table.
func NewSQLRecorder(driver, dsn string) (*SQLRecorder, error) {
	stmts, ok := schemas[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	log.Printf("[INFO] %s query journal opened", driver)
	return &SQLRecorder{db: db}, nil
}

func (r *SQLRecorder) RecordQuery(evt *QueryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.NamedExec(`INSERT INTO query_log (id, mode, term, matches, answered_at)
		VALUES (:id, :mode, :term, :matches, :answered_at)`, evt)
	return err
}

// count returns the number of journaled queries.
func (r *SQLRecorder) count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM query_log`)
	return n, err
}

func (r *SQLRecorder) Close() error {
	log.Println("[INFO] closing query journal")
	return r.db.Close()
}

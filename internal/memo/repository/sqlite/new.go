package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"zitta/internal/memo/repository"
	"zitta/pkg/log"
)

const schema = `
	CREATE TABLE IF NOT EXISTS memos (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_memos_updated_at ON memos (updated_at);`

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates the sqlite-backed memo repository and ensures its table exists.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("memo/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l, now: time.Now}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		l.Errorf(ctx, "%s: %v", r.dsn("New"), err)
		return nil, repository.ErrFailedToMigrate
	}
	return r, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("memo/repository/sqlite.%s", method)
}

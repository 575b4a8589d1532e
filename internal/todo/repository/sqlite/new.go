package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"zitta/internal/todo/repository"
	"zitta/pkg/log"
)

const schema = `
	CREATE TABLE IF NOT EXISTS todos (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT    NOT NULL,
		updated_at  TEXT    NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_todos_created_at ON todos (created_at);`

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates the sqlite-backed todo repository and ensures its table exists.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("todo/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l, now: time.Now}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		l.Errorf(ctx, "%s: %v", r.dsn("New"), err)
		return nil, repository.ErrFailedToMigrate
	}
	return r, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/sqlite.%s", method)
}

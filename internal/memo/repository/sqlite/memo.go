package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"zitta/internal/memo"
	repo "zitta/internal/memo/repository"
	sqlitedb "zitta/pkg/sqlite"
)

const selectColumns = `SELECT id, title, content, tags, created_at, updated_at FROM memos`

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) CreateMemo(ctx context.Context, opt repo.CreateMemoOptions) (memo.Memo, error) {
	const query = `
		INSERT INTO memos (title, content, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`

	now := sqlitedb.FormatTime(r.now())
	res, err := r.db.ExecContext(ctx, query, opt.Title, opt.Content, joinTags(opt.Tags), now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMemo"), err)
		return memo.Memo{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: last insert id: %v", r.dsn("CreateMemo"), err)
		return memo.Memo{}, repo.ErrFailedToInsert
	}
	return r.GetOneMemo(ctx, id)
}

func (r *implRepository) GetOneMemo(ctx context.Context, id int64) (memo.Memo, error) {
	m, err := scanMemo(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return memo.Memo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMemo"), err)
		return memo.Memo{}, repo.ErrFailedToGet
	}
	return m, nil
}

func (r *implRepository) ListMemos(ctx context.Context, opt repo.ListMemosOptions) ([]memo.Memo, error) {
	mods, args := r.buildListQuery(opt)

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("%s %s", selectColumns, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMemos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var memos []memo.Memo
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListMemos"), err)
			return nil, repo.ErrFailedToList
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListMemos"), err)
		return nil, repo.ErrFailedToList
	}
	return memos, nil
}

func (r *implRepository) UpdateMemo(ctx context.Context, opt repo.UpdateMemoOptions) (bool, error) {
	sets, args := r.buildUpdateQuery(opt)
	if len(args) == 0 {
		return false, nil
	}

	query := fmt.Sprintf(`UPDATE memos SET %s, updated_at = ? WHERE id = ?`, sets)
	args = append(args, sqlitedb.FormatTime(r.now()), opt.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateMemo"), err)
		return false, repo.ErrFailedToUpdate
	}
	return affected(res), nil
}

func (r *implRepository) DeleteMemo(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM memos WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMemo"), err)
		return false, repo.ErrFailedToDelete
	}
	return affected(res), nil
}

func scanMemo(s scanner) (memo.Memo, error) {
	var (
		m                    memo.Memo
		tags                 string
		createdAt, updatedAt string
	)
	if err := s.Scan(&m.ID, &m.Title, &m.Content, &tags, &createdAt, &updatedAt); err != nil {
		return memo.Memo{}, err
	}

	var err error
	if m.CreatedAt, err = sqlitedb.ParseTime(createdAt); err != nil {
		return memo.Memo{}, err
	}
	if m.UpdatedAt, err = sqlitedb.ParseTime(updatedAt); err != nil {
		return memo.Memo{}, err
	}
	m.Tags = memo.SplitTags(tags)
	return m, nil
}

func joinTags(tags []string) string {
	return strings.Join(memo.NormalizeTags(tags), ",")
}

func affected(res sql.Result) bool {
	n, err := res.RowsAffected()
	return err == nil && n > 0
}

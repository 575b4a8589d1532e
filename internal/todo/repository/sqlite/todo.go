package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"zitta/internal/todo"
	repo "zitta/internal/todo/repository"
	sqlitedb "zitta/pkg/sqlite"
)

const selectColumns = `SELECT id, title, description, completed, created_at, updated_at FROM todos`

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	const query = `
		INSERT INTO todos (title, description, completed, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?)`

	now := sqlitedb.FormatTime(r.now())
	res, err := r.db.ExecContext(ctx, query, opt.Title, opt.Description, now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: last insert id: %v", r.dsn("CreateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToInsert
	}
	return r.GetOneTodo(ctx, id)
}

func (r *implRepository) GetOneTodo(ctx context.Context, id int64) (todo.Todo, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return todo.Todo{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]todo.Todo, error) {
	mods, args := r.buildListQuery(opt)

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("%s %s", selectColumns, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListTodos"), err)
			return nil, repo.ErrFailedToList
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	return todos, nil
}

func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (bool, error) {
	sets, args := r.buildUpdateQuery(opt)
	if len(args) == 0 {
		return false, nil
	}

	query := fmt.Sprintf(`UPDATE todos SET %s, updated_at = ? WHERE id = ?`, sets)
	args = append(args, sqlitedb.FormatTime(r.now()), opt.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return false, repo.ErrFailedToUpdate
	}
	return affected(res), nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return false, repo.ErrFailedToDelete
	}
	return affected(res), nil
}

func scanTodo(s scanner) (todo.Todo, error) {
	var (
		t                    todo.Todo
		completed            int
		createdAt, updatedAt string
	)
	if err := s.Scan(&t.ID, &t.Title, &t.Description, &completed, &createdAt, &updatedAt); err != nil {
		return todo.Todo{}, err
	}

	var err error
	if t.CreatedAt, err = sqlitedb.ParseTime(createdAt); err != nil {
		return todo.Todo{}, err
	}
	if t.UpdatedAt, err = sqlitedb.ParseTime(updatedAt); err != nil {
		return todo.Todo{}, err
	}
	t.Completed = completed != 0
	return t, nil
}

func affected(res sql.Result) bool {
	n, err := res.RowsAffected()
	return err == nil && n > 0
}

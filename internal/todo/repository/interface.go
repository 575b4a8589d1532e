package repository

import (
	"context"

	"zitta/internal/todo"
)

// Repository is the todo data store.
type Repository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (todo.Todo, error)
	// GetOneTodo returns a zero Todo (ID == 0) when not found.
	GetOneTodo(ctx context.Context, id int64) (todo.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]todo.Todo, error)
	// UpdateTodo reports whether a row changed.
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (bool, error)
	DeleteTodo(ctx context.Context, id int64) (bool, error)
}

package todo

import "errors"

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrEmptyTitle      = errors.New("todo title is empty")
	ErrNothingToUpdate = errors.New("no fields to update")
)

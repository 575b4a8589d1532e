package memo

import "errors"

var (
	ErrMemoNotFound    = errors.New("memo not found")
	ErrEmptyTitle      = errors.New("memo title is empty")
	ErrNothingToUpdate = errors.New("no fields to update")
)

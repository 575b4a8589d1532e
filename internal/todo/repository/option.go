package repository

type CreateTodoOptions struct {
	Title       string
	Description string
}

// ListTodosOptions filters ListTodos. Rows come newest first.
type ListTodosOptions struct {
	Completed *bool
	Limit     int
}

// UpdateTodoOptions holds a partial update; nil fields are not written.
type UpdateTodoOptions struct {
	ID          int64
	Title       *string
	Description *string
	Completed   *bool
}

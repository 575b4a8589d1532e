package todo

import "time"

// Todo is a task the user asked the assistant to remember.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateInput struct {
	Title       string
	Description string
}

// ListInput filters List. A nil Completed returns every todo; Limit <= 0 is unbounded.
type ListInput struct {
	Completed *bool
	Limit     int
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the update would change nothing.
func (in UpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Completed == nil
}

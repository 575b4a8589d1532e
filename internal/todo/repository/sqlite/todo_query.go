package sqlite

import (
	"strings"

	repo "zitta/internal/todo/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListTodos.
func (r *implRepository) buildListQuery(opt repo.ListTodosOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.Completed != nil {
		parts = append(parts, "WHERE completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}

	parts = append(parts, "ORDER BY created_at DESC, id DESC")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	return strings.Join(parts, " "), args
}

// buildUpdateQuery returns the SET list for the non-nil fields of opt.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTodoOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	return strings.Join(sets, ", "), args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package sqlite

import (
	"strings"

	repo "zitta/internal/memo/repository"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListMemos.
func (r *implRepository) buildListQuery(opt repo.ListMemosOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if tag := strings.TrimSpace(opt.Tag); tag != "" {
		conditions = append(conditions, `(',' || tags || ',') LIKE ? ESCAPE '\'`)
		args = append(args, "%,"+likeEscaper.Replace(tag)+",%")
	}
	if q := strings.TrimSpace(opt.Query); q != "" {
		pattern := "%" + likeEscaper.Replace(q) + "%"
		conditions = append(conditions, `(title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY updated_at DESC, id DESC")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	return strings.Join(parts, " "), args
}

func (r *implRepository) buildUpdateQuery(opt repo.UpdateMemoOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *opt.Content)
	}
	if opt.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, joinTags(*opt.Tags))
	}
	return strings.Join(sets, ", "), args
}

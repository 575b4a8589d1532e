package memo

import (
	"slices"
	"strings"
	"time"
)

type Memo struct {
	ID        int64
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateInput struct {
	Title   string
	Content string
	Tags    []string
}

// ListInput filters List. Tag matches a whole tag; Query matches title or
// content as a substring. Limit <= 0 is unbounded.
type ListInput struct {
	Tag   string
	Query string
	Limit int
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID      int64
	Title   *string
	Content *string
	Tags    *[]string
}

func (in UpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Content == nil && in.Tags == nil
}

// NormalizeTags trims, drops empties and duplicates, and keeps first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || strings.Contains(t, ",") || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitTags parses the comma separated form used by storage and query strings.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(s, ","))
}

package repository

type CreateMemoOptions struct {
	Title   string
	Content string
	Tags    []string
}

type ListMemosOptions struct {
	Tag   string
	Query string
	Limit int
}

type UpdateMemoOptions struct {
	ID      int64
	Title   *string
	Content *string
	Tags    *[]string
}

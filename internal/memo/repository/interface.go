package repository

import (
	"context"

	"zitta/internal/memo"
)

type Repository interface {
	CreateMemo(ctx context.Context, opt CreateMemoOptions) (memo.Memo, error)
	// GetOneMemo returns a zero Memo (ID == 0) when not found.
	GetOneMemo(ctx context.Context, id int64) (memo.Memo, error)
	ListMemos(ctx context.Context, opt ListMemosOptions) ([]memo.Memo, error)
	UpdateMemo(ctx context.Context, opt UpdateMemoOptions) (bool, error)
	DeleteMemo(ctx context.Context, id int64) (bool, error)
}

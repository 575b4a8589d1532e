package usecase

import (
	"context"
	"strings"

	"zitta/internal/memo"
	repo "zitta/internal/memo/repository"
)

func (uc *implUseCase) Add(ctx context.Context, input memo.CreateInput) (memo.Memo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return memo.Memo{}, memo.ErrEmptyTitle
	}

	m, err := uc.repo.CreateMemo(ctx, repo.CreateMemoOptions{
		Title:   title,
		Content: input.Content,
		Tags:    memo.NormalizeTags(input.Tags),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateMemo: %v", err)
		return memo.Memo{}, err
	}
	return m, nil
}

func (uc *implUseCase) List(ctx context.Context, input memo.ListInput) ([]memo.Memo, error) {
	memos, err := uc.repo.ListMemos(ctx, repo.ListMemosOptions{
		Tag:   input.Tag,
		Query: input.Query,
		Limit: input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMemos: %v", err)
		return nil, err
	}
	return memos, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (memo.Memo, error) {
	m, err := uc.repo.GetOneMemo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetOneMemo: %v", err)
		return memo.Memo{}, err
	}
	if m.ID == 0 {
		return memo.Memo{}, memo.ErrMemoNotFound
	}
	return m, nil
}

func (uc *implUseCase) Update(ctx context.Context, input memo.UpdateInput) (memo.Memo, error) {
	if input.IsEmpty() {
		return memo.Memo{}, memo.ErrNothingToUpdate
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return memo.Memo{}, memo.ErrEmptyTitle
		}
		input.Title = &title
	}

	ok, err := uc.repo.UpdateMemo(ctx, repo.UpdateMemoOptions{
		ID:      input.ID,
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateMemo: %v", err)
		return memo.Memo{}, err
	}
	if !ok {
		return memo.Memo{}, memo.ErrMemoNotFound
	}
	return uc.Get(ctx, input.ID)
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteMemo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteMemo: %v", err)
		return err
	}
	if !ok {
		return memo.ErrMemoNotFound
	}
	return nil
}

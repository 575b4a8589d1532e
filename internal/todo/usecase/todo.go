package usecase

import (
	"context"
	"strings"

	"zitta/internal/todo"
	repo "zitta/internal/todo/repository"
)

// Add stores a new open todo. The title is trimmed and must not be empty.
func (uc *implUseCase) Add(ctx context.Context, input todo.CreateInput) (todo.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.Todo{}, todo.ErrEmptyTitle
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateTodo: %v", err)
		return todo.Todo{}, err
	}
	return t, nil
}

func (uc *implUseCase) List(ctx context.Context, input todo.ListInput) ([]todo.Todo, error) {
	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{
		Completed: input.Completed,
		Limit:     input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (todo.Todo, error) {
	t, err := uc.repo.GetOneTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetOneTodo: %v", err)
		return todo.Todo{}, err
	}
	if t.ID == 0 {
		return todo.Todo{}, todo.ErrTodoNotFound
	}
	return t, nil
}

// Update applies a partial update and returns the stored todo.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateInput) (todo.Todo, error) {
	if input.IsEmpty() {
		return todo.Todo{}, todo.ErrNothingToUpdate
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return todo.Todo{}, todo.ErrEmptyTitle
		}
		input.Title = &title
	}

	ok, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.Todo{}, err
	}
	if !ok {
		return todo.Todo{}, todo.ErrTodoNotFound
	}
	return uc.Get(ctx, input.ID)
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	if !ok {
		return todo.ErrTodoNotFound
	}
	return nil
}

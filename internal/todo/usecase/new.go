package usecase

import (
	"zitta/internal/todo"
	"zitta/internal/todo/repository"
	"zitta/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates the todo use case.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

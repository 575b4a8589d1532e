package usecase

import (
	"zitta/internal/memo"
	"zitta/internal/memo/repository"
	"zitta/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ memo.UseCase = (*implUseCase)(nil)

func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

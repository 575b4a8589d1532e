package assistant

import (
	"zitta/internal/conversation"
	"zitta/pkg/log"
)

type implUseCase struct {
	engine  Engine
	llm     LLM
	history conversation.Store
	cfg     Config
	l       log.Logger
}

var _ UseCase = (*implUseCase)(nil)

func New(l log.Logger, e Engine, llm LLM, history conversation.Store, cfg Config) *implUseCase {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}
	return &implUseCase{engine: e, llm: llm, history: history, cfg: cfg, l: l}
}

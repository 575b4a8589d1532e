package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"zitta/internal/assistant"
	"zitta/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrEmptySession),
		errors.Is(err, assistant.ErrEmptyType):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

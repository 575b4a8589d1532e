package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"zitta/internal/memo"
	"zitta/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, memo.ErrMemoNotFound):
		response.NotFound(c, err)
	case errors.Is(err, memo.ErrEmptyTitle), errors.Is(err, memo.ErrNothingToUpdate):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

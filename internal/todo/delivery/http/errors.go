package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"zitta/internal/todo"
	"zitta/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

// mapError writes the response for an error returned by the use case.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		response.NotFound(c, err)
	case errors.Is(err, todo.ErrEmptyTitle), errors.Is(err, todo.ErrNothingToUpdate):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

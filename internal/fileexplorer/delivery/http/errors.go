package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"zitta/internal/fileexplorer"
	"zitta/pkg/response"
)

var (
	errPathRequired    = errors.New("path is required")
	errPatternRequired = errors.New("pattern is required")
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fileexplorer.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, fileexplorer.ErrNoAccess):
		response.Forbidden(c, err)
	default:
		response.InternalError(c, err)
	}
}

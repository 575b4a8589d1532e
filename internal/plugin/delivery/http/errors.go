package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"zitta/internal/plugin"
	"zitta/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plugin.ErrPluginNotFound), errors.Is(err, plugin.ErrNoSource):
		response.NotFound(c, err)
	case errors.Is(err, plugin.ErrAlreadyLoaded):
		response.Conflict(c, err)
	default:
		response.InternalError(c, err)
	}
}

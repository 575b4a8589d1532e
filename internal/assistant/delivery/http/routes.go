package http

import (
	"github.com/gin-gonic/gin"

	"zitta/internal/middleware"
)

// RegisterRoutes maps /chat onto the handler. Message routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.POST("/dispatch", mw.RateLimit(), h.Dispatch)
		chat.POST("/finalize", h.Finalize)
		chat.DELETE("/sessions/:id", h.ClearSession)
	}
}

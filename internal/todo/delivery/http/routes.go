package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /todos onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	todos := rg.Group("/todos")
	{
		todos.POST("", h.Create)
		todos.GET("", h.List)
		todos.GET("/:id", h.Detail)
		todos.PUT("/:id", h.Update)
		todos.DELETE("/:id", h.Delete)
	}
}

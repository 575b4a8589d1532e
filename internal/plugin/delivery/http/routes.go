package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	plugins := rg.Group("/plugins")
	{
		plugins.GET("", h.List)
		plugins.POST("/:name", h.Load)
		plugins.PUT("/:name/enabled", h.SetEnabled)
		plugins.DELETE("/:name", h.Unload)
	}
}

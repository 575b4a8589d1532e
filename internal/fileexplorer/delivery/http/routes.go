package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	files := rg.Group("/files")
	{
		files.GET("", h.List)
		files.GET("/info", h.Info)
		files.GET("/search", h.Search)
	}
}

package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	memos := rg.Group("/memos")
	{
		memos.POST("", h.Create)
		memos.GET("", h.List)
		memos.GET("/:id", h.Detail)
		memos.PUT("/:id", h.Update)
		memos.DELETE("/:id", h.Delete)
	}
}

package http

import "github.com/gin-gonic/gin"

func (h *handler) processEnabledReq(c *gin.Context) (enabledReq, error) {
	var req enabledReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

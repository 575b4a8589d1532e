package http

import "github.com/gin-gonic/gin"

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processFinalizeReq(c *gin.Context) (finalizeReq, error) {
	var req finalizeReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

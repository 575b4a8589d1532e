package http

import "github.com/gin-gonic/gin"

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Pattern == "" {
		return req, errPatternRequired
	}
	if req.Dir == "" {
		req.Dir = "."
	}
	return req, nil
}

package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	id, err := parseID(c)
	if err != nil {
		return updateReq{}, err
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

package http

import (
	"github.com/gin-gonic/gin"

	"zitta/pkg/response"
)

// Create godoc
// @Summary     Create a memo
// @Tags        Memos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Memo"
// @Success     201  {object} memoResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/memos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newMemoResp(out))
}

// List godoc
// @Summary     List memos
// @Description Most recently updated first.
// @Tags        Memos
// @Produce     json
// @Param       tag   query string false "Whole tag match"
// @Param       q     query string false "Substring of title or content"
// @Param       limit query int    false "Maximum number of memos"
// @Success     200 {object} listResp
// @Router      /api/v1/memos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newListResp(out))
}

// Detail godoc
// @Summary     Get a memo
// @Tags        Memos
// @Produce     json
// @Param       id path int true "Memo ID"
// @Success     200 {object} memoResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/memos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newMemoResp(out))
}

// Update godoc
// @Summary     Update a memo
// @Tags        Memos
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Memo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} memoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/memos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newMemoResp(out))
}

// Delete godoc
// @Summary     Delete a memo
// @Tags        Memos
// @Param       id path int true "Memo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/memos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

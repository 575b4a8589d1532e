package http

import (
	"github.com/gin-gonic/gin"

	"zitta/pkg/response"
)

// Create godoc
// @Summary     Create a todo
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo"
// @Success     201  {object} todoResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
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

	response.Created(c, newTodoResp(out))
}

// List godoc
// @Summary     List todos
// @Description Newest first. Without completed, every todo is returned.
// @Tags        Todos
// @Produce     json
// @Param       completed query bool false "Filter by completion"
// @Param       limit     query int  false "Maximum number of todos"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
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
// @Summary     Get a todo
// @Tags        Todos
// @Produce     json
// @Param       id path int true "Todo ID"
// @Success     200 {object} todoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Get(ctx, id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newTodoResp(out))
}

// Update godoc
// @Summary     Update a todo
// @Description Partial update; omitted fields are kept.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Todo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} todoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [PUT]
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

	response.OK(c, newTodoResp(out))
}

// Delete godoc
// @Summary     Delete a todo
// @Tags        Todos
// @Produce     json
// @Param       id path int true "Todo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

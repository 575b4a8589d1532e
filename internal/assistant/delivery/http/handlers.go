package http

import (
	"github.com/gin-gonic/gin"

	"zitta/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the assistant
// @Description Routes the message through plugins, the keyword router and the stores.
// @Description Chat and create commands are completed with the LLM. An empty session_id starts a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Chat(ctx, req.SessionID, req.Message, req.CurrentDirectory)
	if err != nil {
		h.l.Warnf(ctx, "uc.Chat: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newChatResp(reply))
}

// Dispatch godoc
// @Summary     Dispatch a message without calling the LLM
// @Description Pending results carry needs_llm and llm_prompt; complete them with /chat/finalize.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200  {object} dispatchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/dispatch [POST]
func (h *handler) Dispatch(c *gin.Context) {
	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res := h.uc.Dispatch(c.Request.Context(), req.SessionID, req.Message, req.CurrentDirectory)
	response.OK(c, dispatchResp{SessionID: req.SessionID, Result: res})
}

// Finalize godoc
// @Summary     Complete a pending result
// @Description For todo and memo create the text is used as the title. Other types pass the text through.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body finalizeReq true "LLM output"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/finalize [POST]
func (h *handler) Finalize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFinalizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, a := req.kind()
	reply, err := h.uc.Finalize(ctx, req.SessionID, req.LLMText, t, a)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newChatResp(reply))
}

// ClearSession godoc
// @Summary     Forget a conversation
// @Tags        Chat
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearSession(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.ClearSession: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

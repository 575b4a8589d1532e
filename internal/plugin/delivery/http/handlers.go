package http

import (
	"github.com/gin-gonic/gin"

	"zitta/pkg/response"
)

// List godoc
// @Summary     List loaded plugins
// @Description In dispatch order.
// @Tags        Plugins
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/plugins [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, listResp{Plugins: h.registry.List()})
}

// Load godoc
// @Summary     Load a plugin
// @Description Loads a compiled-in plugin or a script from the plugin directory.
// @Tags        Plugins
// @Produce     json
// @Param       name path string true "Plugin key"
// @Success     201 {object} response.Resp "Created"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/plugins/{name} [POST]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := h.registry.LoadPlugin(ctx, name); err != nil {
		h.l.Warnf(ctx, "registry.LoadPlugin %s: %v", name, err)
		h.mapError(c, err)
		return
	}

	response.Created(c, nil)
}

// SetEnabled godoc
// @Summary     Enable or disable a plugin
// @Tags        Plugins
// @Accept      json
// @Produce     json
// @Param       name path string     true "Plugin key"
// @Param       body body enabledReq true "Toggle"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plugins/{name}/enabled [PUT]
func (h *handler) SetEnabled(c *gin.Context) {
	req, err := h.processEnabledReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.registry.SetEnabled(c.Param("name"), *req.Enabled); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Unload godoc
// @Summary     Unload a plugin
// @Description The plugin stays registered when its unload hook fails.
// @Tags        Plugins
// @Param       name path string true "Plugin key"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plugins/{name} [DELETE]
func (h *handler) Unload(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := h.registry.UnloadPlugin(ctx, name); err != nil {
		h.l.Errorf(ctx, "registry.UnloadPlugin %s: %v", name, err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

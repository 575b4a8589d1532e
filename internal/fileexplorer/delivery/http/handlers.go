package http

import (
	"github.com/gin-gonic/gin"

	"zitta/pkg/response"
)

// List godoc
// @Summary     List a directory
// @Description Directories first, then files, by name. Unreadable directories list as empty.
// @Tags        Files
// @Produce     json
// @Param       path   query string false "Directory (default .)"
// @Param       filter query string false "all, dir or file"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/files [GET]
func (h *handler) List(c *gin.Context) {
	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	entries := h.explorer.ListDirectory(c.Request.Context(), req.dir())
	response.OK(c, newListResp(req.dir(), req.filter(), entries))
}

// Info godoc
// @Summary     Describe a file or directory
// @Tags        Files
// @Produce     json
// @Param       path query string true "Path"
// @Success     200 {object} fileexplorer.Info
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/files/info [GET]
func (h *handler) Info(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		response.Error(c, errPathRequired, nil)
		return
	}

	info, err := h.explorer.FileInfo(c.Request.Context(), path)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, info)
}

// Search godoc
// @Summary     Find files by name
// @Tags        Files
// @Produce     json
// @Param       dir       query string true  "Directory to search"
// @Param       pattern   query string true  "Case-insensitive substring of the file name"
// @Param       recursive query bool   false "Descend into subdirectories"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/files/search [GET]
func (h *handler) Search(c *gin.Context) {
	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	paths := h.explorer.SearchFiles(c.Request.Context(), req.Dir, req.Pattern, req.Recursive)
	response.OK(c, searchResp{Dir: req.Dir, Paths: paths})
}

package http

import "zitta/internal/plugin"

type enabledReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type listResp struct {
	Plugins []plugin.Info `json:"plugins"`
}

package http

import (
	"zitta/internal/fileexplorer"
	"zitta/internal/intent"
)

type listReq struct {
	Path   string `form:"path"`
	Filter string `form:"filter" binding:"omitempty,oneof=all dir file"`
}

func (r listReq) dir() string {
	if r.Path == "" {
		return fileexplorer.DefaultDirectory
	}
	return r.Path
}

func (r listReq) filter() intent.Filter {
	if f := intent.Filter(r.Filter); f.Valid() {
		return f
	}
	return intent.FilterAll
}

type searchReq struct {
	Dir       string `form:"dir"`
	Pattern   string `form:"pattern"`
	Recursive bool   `form:"recursive"`
}

type listResp struct {
	Path    string               `json:"path"`
	Filter  intent.Filter        `json:"filter"`
	Entries []fileexplorer.Entry `json:"entries"`
}

func newListResp(path string, f intent.Filter, entries []fileexplorer.Entry) listResp {
	out := make([]fileexplorer.Entry, 0, len(entries))
	for _, e := range entries {
		switch {
		case f == intent.FilterDir && !e.IsDir:
		case f == intent.FilterFile && e.IsDir:
		default:
			out = append(out, e)
		}
	}
	return listResp{Path: path, Filter: f, Entries: out}
}

type searchResp struct {
	Dir   string   `json:"dir"`
	Paths []string `json:"paths"`
}

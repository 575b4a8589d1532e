package http

import (
	"zitta/internal/memo"
	"zitta/pkg/response"
)

type createReq struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (r createReq) toInput() memo.CreateInput {
	return memo.CreateInput{Title: r.Title, Content: r.Content, Tags: r.Tags}
}

type listReq struct {
	Tag   string `form:"tag"`
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

func (r listReq) toInput() memo.ListInput {
	return memo.ListInput{Tag: r.Tag, Query: r.Query, Limit: r.Limit}
}

type updateReq struct {
	ID      int64     `json:"-"`
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

func (r updateReq) toInput() memo.UpdateInput {
	return memo.UpdateInput{ID: r.ID, Title: r.Title, Content: r.Content, Tags: r.Tags}
}

type memoResp struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Tags      []string          `json:"tags"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string" example:"2026-10-18 09:00:00"`
	UpdatedAt response.DateTime `json:"updated_at" swaggertype:"string" example:"2026-10-18 09:00:00"`
}

func newMemoResp(m memo.Memo) memoResp {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return memoResp{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      tags,
		CreatedAt: response.DateTime(m.CreatedAt),
		UpdatedAt: response.DateTime(m.UpdatedAt),
	}
}

type listResp struct {
	Memos []memoResp `json:"memos"`
	Total int        `json:"total"`
}

func newListResp(memos []memo.Memo) listResp {
	out := make([]memoResp, len(memos))
	for i, m := range memos {
		out[i] = newMemoResp(m)
	}
	return listResp{Memos: out, Total: len(out)}
}

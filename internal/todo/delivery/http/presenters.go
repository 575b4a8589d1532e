package http

import (
	"zitta/internal/todo"
	"zitta/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{Title: r.Title, Description: r.Description}
}

type listReq struct {
	Completed *bool `form:"completed"`
	Limit     int   `form:"limit"`
}

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{Completed: r.Completed, Limit: r.Limit}
}

type updateReq struct {
	ID          int64   `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Completed   bool              `json:"completed"`
	CreatedAt   response.DateTime `json:"created_at" swaggertype:"string" example:"2026-10-18 09:00:00"`
	UpdatedAt   response.DateTime `json:"updated_at" swaggertype:"string" example:"2026-10-18 09:00:00"`
}

func newTodoResp(t todo.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
	Total int        `json:"total"`
}

func newListResp(todos []todo.Todo) listResp {
	out := make([]todoResp, len(todos))
	for i, t := range todos {
		out[i] = newTodoResp(t)
	}
	return listResp{Todos: out, Total: len(out)}
}

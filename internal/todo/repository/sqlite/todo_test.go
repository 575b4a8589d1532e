package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	repo "zitta/internal/todo/repository"
	"zitta/pkg/log"
	sqlitedb "zitta/pkg/sqlite"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	ctx := context.Background()

	db, err := sqlitedb.Connect(ctx, filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := New(ctx, db, log.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	impl := r.(*implRepository)
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	tick := 0
	impl.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return impl
}

func ptr[T any](v T) *T { return &v }

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, err := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "우유 사기", Description: "2L"})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if created.ID == 0 || created.Title != "우유 사기" || created.Description != "2L" || created.Completed {
		t.Errorf("unexpected todo %+v", created)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("unexpected timestamps %v %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := r.GetOneTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetOneTodo() error = %v", err)
	}
	if got != created {
		t.Errorf("GetOneTodo() = %+v, want %+v", got, created)
	}

	missing, err := r.GetOneTodo(ctx, 999)
	if err != nil || missing.ID != 0 {
		t.Errorf("expected zero value for missing todo, got %+v, %v", missing, err)
	}
}

func TestListTodos(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: title}); err != nil {
			t.Fatal(err)
		}
	}
	if ok, err := r.UpdateTodo(ctx, repo.UpdateTodoOptions{ID: 2, Completed: ptr(true)}); err != nil || !ok {
		t.Fatalf("UpdateTodo() = %v, %v", ok, err)
	}

	tests := []struct {
		name string
		opt  repo.ListTodosOptions
		want []string
	}{
		{name: "all newest first", opt: repo.ListTodosOptions{}, want: []string{"third", "second", "first"}},
		{name: "open only", opt: repo.ListTodosOptions{Completed: ptr(false)}, want: []string{"third", "first"}},
		{name: "completed only", opt: repo.ListTodosOptions{Completed: ptr(true)}, want: []string{"second"}},
		{name: "limit", opt: repo.ListTodosOptions{Limit: 2}, want: []string{"third", "second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos, err := r.ListTodos(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListTodos() error = %v", err)
			}
			var got []string
			for _, td := range todos {
				got = append(got, td.Title)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ListTodos() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ListTodos() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestUpdateTodo(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "draft", Description: "keep"})

	t.Run("partial update", func(t *testing.T) {
		ok, err := r.UpdateTodo(ctx, repo.UpdateTodoOptions{ID: created.ID, Title: ptr("final")})
		if err != nil || !ok {
			t.Fatalf("UpdateTodo() = %v, %v", ok, err)
		}
		got, _ := r.GetOneTodo(ctx, created.ID)
		if got.Title != "final" || got.Description != "keep" {
			t.Errorf("unexpected todo %+v", got)
		}
		if !got.UpdatedAt.After(got.CreatedAt) {
			t.Errorf("updated_at must advance")
		}
	})

	t.Run("no fields", func(t *testing.T) {
		ok, err := r.UpdateTodo(ctx, repo.UpdateTodoOptions{ID: created.ID})
		if err != nil || ok {
			t.Errorf("UpdateTodo() = %v, %v; want false, nil", ok, err)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		ok, err := r.UpdateTodo(ctx, repo.UpdateTodoOptions{ID: 42, Completed: ptr(true)})
		if err != nil || ok {
			t.Errorf("UpdateTodo() = %v, %v; want false, nil", ok, err)
		}
	})
}

func TestDeleteTodo(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "temp"})

	if ok, err := r.DeleteTodo(ctx, created.ID); err != nil || !ok {
		t.Fatalf("DeleteTodo() = %v, %v", ok, err)
	}
	if ok, err := r.DeleteTodo(ctx, created.ID); err != nil || ok {
		t.Errorf("second DeleteTodo() = %v, %v; want false, nil", ok, err)
	}
	if todos, _ := r.ListTodos(ctx, repo.ListTodosOptions{}); len(todos) != 0 {
		t.Errorf("expected empty store, got %v", todos)
	}
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"zitta/internal/todo/repository/sqlite"
	"zitta/internal/todo/usecase"
	"zitta/pkg/log"
	"zitta/pkg/response"
	sqlitedb "zitta/pkg/sqlite"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	db, err := sqlitedb.Connect(ctx, filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := sqlite.New(ctx, db, log.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), usecase.New(repo, log.NewNop())))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func TestTodoRoutes(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/todos", `{"title":"우유 사기","description":"2L"}`)
	if code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", code, env.Message)
	}
	var created todoResp
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 || created.Title != "우유 사기" || created.Completed {
		t.Errorf("unexpected todo %+v", created)
	}
	var raw map[string]any
	_ = json.Unmarshal(env.Data, &raw)
	if ts, _ := raw["created_at"].(string); len(ts) != len(response.DateTimeFormat) || strings.Contains(ts, "T") {
		t.Errorf("created_at should use %q, got %v", response.DateTimeFormat, raw["created_at"])
	}

	if code, _ := do(t, r, http.MethodPost, "/api/v1/todos", `{"title":""}`); code != http.StatusBadRequest {
		t.Errorf("create without title: expected 400, got %d", code)
	}

	code, env = do(t, r, http.MethodPut, "/api/v1/todos/1", `{"completed":true}`)
	if code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", code, env.Message)
	}
	var updated todoResp
	_ = json.Unmarshal(env.Data, &updated)
	if !updated.Completed || updated.Title != "우유 사기" {
		t.Errorf("unexpected update result %+v", updated)
	}

	if code, _ := do(t, r, http.MethodPut, "/api/v1/todos/1", `{}`); code != http.StatusBadRequest {
		t.Errorf("empty update: expected 400, got %d", code)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/todos?completed=false", "")
	if code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", code)
	}
	var list listResp
	_ = json.Unmarshal(env.Data, &list)
	if list.Total != 0 {
		t.Errorf("expected no open todos, got %+v", list)
	}

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"detail", http.MethodGet, "/api/v1/todos/1", http.StatusOK},
		{"bad id", http.MethodGet, "/api/v1/todos/abc", http.StatusBadRequest},
		{"missing", http.MethodGet, "/api/v1/todos/99", http.StatusNotFound},
		{"delete", http.MethodDelete, "/api/v1/todos/1", http.StatusOK},
		{"delete again", http.MethodDelete, "/api/v1/todos/1", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, env := do(t, r, tt.method, tt.path, ""); code != tt.want {
				t.Errorf("expected %d, got %d (%s)", tt.want, code, env.Message)
			}
		})
	}
}

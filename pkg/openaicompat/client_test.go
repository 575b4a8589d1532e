package openaicompat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New(Config{Preset: Qwen}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	if _, err := New(Config{APIKey: "k"}); !errors.Is(err, ErrMissingURL) {
		t.Errorf("expected ErrMissingURL, got %v", err)
	}

	c, err := New(Config{Preset: DeepSeek, APIKey: "k"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != "deepseek-chat" || c.Vendor() != "deepseek" {
		t.Errorf("preset not applied: %s %s", c.Vendor(), c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != chatCompletionsPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"qwen-plus","choices":[{"index":0,"message":{"role":"assistant","content":"안녕하세요"}}],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
	}))
	defer srv.Close()

	c, err := New(Config{Preset: Qwen, APIKey: "secret", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.GenerateContent(context.Background(), &Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != "안녕하세요" || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Model != "qwen-plus" {
		t.Errorf("unexpected request %+v", got)
	}
}

func TestGenerateContentErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":{"message":"slow down"}}`, wantErr: ErrRateLimited, wantMsg: "qwen: API error 429: slow down"},
		{name: "plain body", status: http.StatusInternalServerError, body: "boom", wantMsg: "qwen: API error 500: boom"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: ErrNoChoices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, _ := New(Config{Preset: Qwen, APIKey: "k", BaseURL: srv.URL})
			_, err := c.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}

	c, _ := New(Config{Preset: Qwen, APIKey: "k"})
	if _, err := c.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrEmptyRequest) {
		t.Errorf("expected ErrEmptyRequest, got %v", err)
	}
}

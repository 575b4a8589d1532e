package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"zitta/internal/conversation"
	"zitta/internal/engine"
	"zitta/internal/intent"
	"zitta/pkg/llmprovider"
	"zitta/pkg/log"
)

type fakeEngine struct {
	result    engine.DispatchResult
	processed []string
	sessions  []string
}

func (f *fakeEngine) Handle(ctx context.Context, message, currentDirectory string) engine.DispatchResult {
	return f.result
}

func (f *fakeEngine) ProcessLLMResponse(ctx context.Context, llmText string, t intent.Type, a intent.Action) engine.DispatchResult {
	f.processed = append(f.processed, llmText)
	text := fmt.Sprintf("할 일 '%s'을 추가했습니다.", strings.TrimSpace(llmText))
	return engine.DispatchResult{Type: t, Action: a, Response: &text}
}

type fakeLLM struct {
	text     string
	err      error
	models   []string
	requests []*llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content:   llmprovider.TextMessage(llmprovider.RoleAssistant, f.text),
		ModelName: "test-model",
	}, nil
}

func (f *fakeLLM) ListModels(ctx context.Context) ([]string, error) {
	return f.models, nil
}

func (f *fakeLLM) Primary() string {
	return "gemini-2.5-flash"
}

func strPtr(s string) *string {
	return &s
}

func newTestUseCase(e Engine, llm LLM) (*implUseCase, *conversation.MemoryStore) {
	store := conversation.NewMemoryStore(10, time.Minute, 20)
	return New(log.NewNop(), e, llm, store, Config{HistoryLimit: 20}), store
}

func TestChat_FinalizedSkipsLLM(t *testing.T) {
	e := &fakeEngine{result: engine.DispatchResult{Type: intent.TypeTodo, Action: intent.ActionList, Response: strPtr("할 일이 없습니다.")}}
	llm := &fakeLLM{}
	uc, store := newTestUseCase(e, llm)

	reply, err := uc.Chat(context.Background(), "s1", "할일 목록", "")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Text != "할 일이 없습니다." {
		t.Errorf("unexpected text %q", reply.Text)
	}
	if len(llm.requests) != 0 {
		t.Errorf("LLM must not be called, got %d requests", len(llm.requests))
	}

	hist, _ := store.History(context.Background(), "s1")
	if len(hist) != 2 || hist[0].Role != conversation.RoleUser || hist[1].Text != "할 일이 없습니다." {
		t.Errorf("unexpected history %+v", hist)
	}
}

func TestChat_PendingChatUsesHistory(t *testing.T) {
	e := &fakeEngine{result: engine.DispatchResult{Type: intent.TypeChat, NeedsLLM: true, LLMPrompt: "hello"}}
	llm := &fakeLLM{text: "  hi there  "}
	uc, _ := newTestUseCase(e, llm)
	ctx := context.Background()

	first, err := uc.Chat(ctx, "s1", "hello", "")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if first.Text != "hi there" || first.Model != "test-model" {
		t.Errorf("unexpected reply %+v", first)
	}
	if !first.Result.Finalized() || first.Result.Text() != "hi there" {
		t.Errorf("result should be finalized with the LLM text, got %+v", first.Result)
	}

	if _, err := uc.Chat(ctx, "s1", "hello", ""); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	req := llm.requests[1]
	if req.SystemInstruction == nil || req.SystemInstruction.Text() != DefaultSystemPrompt {
		t.Errorf("system prompt not sent")
	}
	if len(req.Messages) != 3 {
		t.Fatalf("expected 2 history messages and the prompt, got %d", len(req.Messages))
	}
	if req.Messages[1].Role != llmprovider.RoleAssistant || req.Messages[1].Text() != "hi there" {
		t.Errorf("unexpected history message %+v", req.Messages[1])
	}
}

func TestChat_EmptyLLMText(t *testing.T) {
	e := &fakeEngine{result: engine.DispatchResult{Type: intent.TypeChat, NeedsLLM: true, LLMPrompt: "hello"}}
	uc, _ := newTestUseCase(e, &fakeLLM{text: " "})

	reply, _ := uc.Chat(context.Background(), "s1", "hello", "")
	if reply.Text != emptyLLMReply {
		t.Errorf("unexpected text %q", reply.Text)
	}
}

func TestChat_CreateTwoPhase(t *testing.T) {
	e := &fakeEngine{result: engine.DispatchResult{
		Type: intent.TypeTodo, Action: intent.ActionCreate, NeedsLLM: true, LLMPrompt: "extract: 우유 사기",
	}}
	llm := &fakeLLM{text: "우유 사기"}
	uc, _ := newTestUseCase(e, llm)

	reply, err := uc.Chat(context.Background(), "s1", "할일 추가 우유 사기", "")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if len(e.processed) != 1 || e.processed[0] != "우유 사기" {
		t.Errorf("unexpected processed texts %v", e.processed)
	}
	if reply.Text != "할 일 '우유 사기'을 추가했습니다." {
		t.Errorf("unexpected text %q", reply.Text)
	}

	req := llm.requests[0]
	if req.SystemInstruction != nil || len(req.Messages) != 1 || req.Messages[0].Text() != "extract: 우유 사기" {
		t.Errorf("extraction must send the prompt alone, got %+v", req)
	}
}

func TestChat_CreateLLMErrorDoesNotStore(t *testing.T) {
	e := &fakeEngine{result: engine.DispatchResult{
		Type: intent.TypeMemo, Action: intent.ActionCreate, NeedsLLM: true, LLMPrompt: "extract",
	}}
	uc, _ := newTestUseCase(e, &fakeLLM{err: errors.New("429 quota exceeded")})

	reply, err := uc.Chat(context.Background(), "s1", "메모 추가 회의", "")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if len(e.processed) != 0 {
		t.Errorf("error text must not be finalized, got %v", e.processed)
	}
	if !strings.HasPrefix(reply.Text, "⚠️ API 할당량 초과") {
		t.Errorf("unexpected text %q", reply.Text)
	}
	if reply.Result.Pending() || reply.Result.Type != intent.TypeMemo {
		t.Errorf("unexpected result %+v", reply.Result)
	}
}

func TestChat_Validation(t *testing.T) {
	e := &fakeEngine{result: engine.DispatchResult{Type: intent.TypeChat, Response: strPtr("ok")}}
	uc, _ := newTestUseCase(e, &fakeLLM{})

	if _, err := uc.Chat(context.Background(), "s1", "   ", ""); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}

	reply, err := uc.Chat(context.Background(), "", "hi", "")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.SessionID == "" {
		t.Errorf("expected a generated session id")
	}
}

func TestFinalize(t *testing.T) {
	e := &fakeEngine{}
	uc, _ := newTestUseCase(e, &fakeLLM{})

	reply, err := uc.Finalize(context.Background(), "s1", "우유", intent.TypeTodo, intent.ActionCreate)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if reply.Text != "할 일 '우유'을 추가했습니다." || reply.SessionID != "s1" {
		t.Errorf("unexpected reply %+v", reply)
	}

	if _, err := uc.Finalize(context.Background(), "s1", "x", "", ""); !errors.Is(err, ErrEmptyType) {
		t.Errorf("expected ErrEmptyType, got %v", err)
	}
}

func TestClearSession(t *testing.T) {
	e := &fakeEngine{result: engine.DispatchResult{Type: intent.TypeChat, Response: strPtr("ok")}}
	uc, store := newTestUseCase(e, &fakeLLM{})
	ctx := context.Background()

	if _, err := uc.Chat(ctx, "s1", "hi", ""); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if err := uc.ClearSession(ctx, "s1"); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if hist, _ := store.History(ctx, "s1"); len(hist) != 0 {
		t.Errorf("expected empty history, got %d", len(hist))
	}
	if err := uc.ClearSession(ctx, ""); !errors.Is(err, ErrEmptySession) {
		t.Errorf("expected ErrEmptySession, got %v", err)
	}
}

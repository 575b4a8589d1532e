package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type mockProvider struct {
	name      string
	model     string
	failTimes int // fail this many calls, then succeed; -1 always fails
	reply     string
	callCount int
	lastReq   *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return &Response{
		Content:      TextMessage(RoleAssistant, m.reply),
		ProviderName: m.name,
		ModelName:    m.model,
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

type listingProvider struct {
	mockProvider
	models []string
}

func (l *listingProvider) ListModels(ctx context.Context) ([]string, error) {
	return l.models, nil
}

type mockLogger struct {
	infos []string
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infos = append(m.infos, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func chatRequest(text string) *Request {
	return &Request{Messages: []Message{TextMessage(RoleUser, text)}}
}

func TestGenerateContent_PrimarySucceeds(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p", reply: "hello"}
	secondary := &mockProvider{name: "secondary", model: "s", reply: "other"}
	logger := &mockLogger{}

	m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, logger)

	resp, err := m.GenerateContent(context.Background(), chatRequest("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content.Text() != "hello" {
		t.Errorf("expected primary reply, got %q", resp.Content.Text())
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called, got %d calls", secondary.callCount)
	}
	if len(logger.infos) != 1 {
		t.Errorf("expected one success log, got %d", len(logger.infos))
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary", reply: "from secondary"}
	logger := &mockLogger{}

	m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2}, logger)

	resp, err := m.GenerateContent(context.Background(), chatRequest("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary provider, got %q", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected primary retried twice, got %d", primary.callCount)
	}
	if len(logger.warns) != 1 {
		t.Errorf("expected one failure log, got %d", len(logger.warns))
	}
}

func TestGenerateContent_RetryRecovers(t *testing.T) {
	flaky := &mockProvider{name: "flaky", failTimes: 1, reply: "ok"}

	m := NewManager([]Provider{flaky}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	if _, err := m.GenerateContent(context.Background(), chatRequest("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flaky.callCount != 2 {
		t.Errorf("expected 2 calls, got %d", flaky.callCount)
	}
}

func TestGenerateContent_AllFail(t *testing.T) {
	a := &mockProvider{name: "a", failTimes: -1}
	b := &mockProvider{name: "b", failTimes: -1}

	m := NewManager([]Provider{a, b}, &Config{FallbackEnabled: true}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), chatRequest("hi"))
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	a := &mockProvider{name: "a", failTimes: -1}
	b := &mockProvider{name: "b", reply: "unused"}

	m := NewManager([]Provider{a, b}, &Config{FallbackEnabled: false}, &mockLogger{})

	if _, err := m.GenerateContent(context.Background(), chatRequest("hi")); err == nil {
		t.Fatal("expected error")
	}
	if b.callCount != 0 {
		t.Errorf("fallback provider must not be called")
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	m := NewManager(nil, nil, &mockLogger{})

	if _, err := m.GenerateContent(context.Background(), chatRequest("hi")); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManager_ListModels(t *testing.T) {
	plain := &mockProvider{name: "plain"}
	lister := &listingProvider{mockProvider: mockProvider{name: "lister"}, models: []string{"gemini-2.5-flash"}}

	m := NewManager([]Provider{plain, lister}, nil, &mockLogger{})

	models, err := m.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 1 || models[0] != "gemini-2.5-flash" {
		t.Errorf("unexpected models %v", models)
	}
}

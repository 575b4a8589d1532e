package builtin

import (
	"context"
	"strings"

	"zitta/internal/plugin"
)

const greetingReply = "안녕하세요! 예제 플러그인입니다."

// Greeting answers hello messages with the legacy text reply.
type Greeting struct{}

func NewGreeting() *Greeting { return &Greeting{} }

func (g *Greeting) Name() string                       { return "ExamplePlugin" }
func (g *Greeting) Version() string                    { return "1.0.0" }
func (g *Greeting) OnLoad(ctx context.Context) error   { return nil }
func (g *Greeting) OnUnload(ctx context.Context) error { return nil }
func (g *Greeting) Commands() []string                 { return []string{"안녕", "hello"} }

func (g *Greeting) HandleCommand(ctx context.Context, message string, pc plugin.Context) (plugin.Result, error) {
	msg := strings.ToLower(message)
	if strings.Contains(msg, "안녕") || strings.Contains(msg, "hello") {
		return plugin.Respond(g.Name(), greetingReply), nil
	}
	return nil, nil
}

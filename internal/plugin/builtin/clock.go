package builtin

import (
	"context"
	"strings"
	"time"

	"zitta/internal/intent"
	"zitta/internal/plugin"
)

var (
	clockTimeKeywords = []string{"몇 시", "몇시", "what time"}
	clockDateKeywords = []string{"며칠", "오늘 날짜", "what date", "what day"}
	weekdays          = [...]string{"일", "월", "화", "수", "목", "금", "토"}
)

// Clock answers time and date questions with a structured intent.
type Clock struct {
	now func() time.Time
}

func NewClock() *Clock { return &Clock{now: time.Now} }

func (c *Clock) Name() string                       { return "Clock" }
func (c *Clock) Version() string                    { return "1.0.0" }
func (c *Clock) OnLoad(ctx context.Context) error   { return nil }
func (c *Clock) OnUnload(ctx context.Context) error { return nil }

func (c *Clock) Commands() []string {
	return append(append([]string{}, clockTimeKeywords...), clockDateKeywords...)
}

func (c *Clock) HandleCommand(ctx context.Context, message string, pc plugin.Context) (plugin.Result, error) {
	msg := strings.ToLower(message)
	now := c.now()

	var reply string
	switch {
	case containsAny(msg, clockTimeKeywords):
		reply = "지금은 " + now.Format("15시 04분") + "입니다."
	case containsAny(msg, clockDateKeywords):
		reply = "오늘은 " + now.Format("2006년 1월 2일") + " " + weekdays[now.Weekday()] + "요일입니다."
	default:
		return nil, nil
	}

	return plugin.StructuredIntent{Intent: intent.New(intent.TypePlugin, intent.ActionRespond, map[string]any{
		intent.KeyPlugin:   c.Name(),
		intent.KeyResponse: reply,
	}, intent.PluginSource(c.Name()))}, nil
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

package llmprovider

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	ProviderOffline = "offline"
	offlineModel    = "rules"
)

var (
	offlineGreetingKeywords = []string{"안녕", "하이", "헬로", "반가"}
	offlineWeatherKeywords  = []string{"날씨", "기온", "온도"}
	offlineTimeKeywords     = []string{"시간", "몇 시"}

	offlineGreetings = []string{
		"안녕하세요! 저는 ZiTTA입니다. 무엇을 도와드릴까요?",
		"반갑습니다! 오늘도 좋은 하루 되세요!",
	}
)

const (
	offlineWeatherReply = "죄송하지만 오프라인 모드에서는 실시간 날씨 정보를 제공할 수 없습니다."
	offlineDefaultReply = "오프라인 모드에서는 제한적인 응답만 가능합니다. 온라인 모드로 전환하시면 더 많은 기능을 사용하실 수 있습니다."
	offlineTimeLayout   = "2006년 01월 02일 15시 04분"

	// offlineExtractMarker ends a title extraction prompt; the command follows it.
	offlineExtractMarker = "제목만 간단히 답변하세요:"
)

// OfflineProvider answers from a few keyword rules without any network access.
type OfflineProvider struct {
	now  func() time.Time
	pick func(n int) int
}

// NewOfflineProvider creates the rule-based provider.
func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{now: time.Now, pick: rand.IntN}
}

// GenerateContent implements Provider interface
func (p *OfflineProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, p.reply(req.LastUserText())),
		ProviderName: ProviderOffline,
		ModelName:    offlineModel,
		Usage:        &Usage{},
	}, nil
}

func (p *OfflineProvider) reply(message string) string {
	if i := strings.Index(message, offlineExtractMarker); i >= 0 {
		return strings.TrimSpace(message[i+len(offlineExtractMarker):])
	}

	msg := strings.ToLower(message)
	switch {
	case containsAny(msg, offlineGreetingKeywords):
		return offlineGreetings[p.pick(len(offlineGreetings))]
	case containsAny(msg, offlineWeatherKeywords):
		return offlineWeatherReply
	case containsAny(msg, offlineTimeKeywords):
		return "현재 시간은 " + p.now().Format(offlineTimeLayout) + "입니다."
	default:
		return offlineDefaultReply
	}
}

// Name returns provider name
func (p *OfflineProvider) Name() string {
	return ProviderOffline
}

// Model returns model name
func (p *OfflineProvider) Model() string {
	return offlineModel
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

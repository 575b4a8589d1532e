package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"zitta/pkg/llmprovider"
	"zitta/pkg/log"
)

func TestDescribeLLMError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		models  []string
		want    []string
		notWant []string
	}{
		{
			name: "timeout wins over quota words",
			err:  fmt.Errorf("%w: global timeout exceeded: %w", llmprovider.ErrProviderTimeout, context.DeadlineExceeded),
			want: []string{timeoutReply},
		},
		{
			name: "quota with retry and model",
			err:  errors.New("429 RESOURCE_EXHAUSTED quota metric, model: gemini-pro-latest. Please retry in 90.5s"),
			want: []string{"⚠️ API 할당량 초과", "현재 모델: gemini-pro-latest", "약 1분 30초 후", "rate-limits"},
		},
		{
			name:    "quota without details",
			err:     errors.New("quota exceeded"),
			want:    []string{"현재 모델: gemini-2.5-flash"},
			notWant: []string{"재시도 가능 시간"},
		},
		{
			name:   "model error groups models",
			err:    errors.New("404 model not found"),
			models: []string{"gemma-3-4b", "gemini-2.5-flash", "gemini-2.0-flash-exp", "gemini-1.5-pro", "embedding-001"},
			want: []string{
				"❌ 모델 오류",
				"⭐ 추천 모델 (안정적)\n  • gemini-2.5-flash",
				"🤖 Gemini 모델\n  • gemini-1.5-pro",
				"💎 Gemma 모델\n  • gemma-3-4b",
				"🔬 Preview/Experimental 모델\n  • gemini-2.0-flash-exp",
				"📦 기타 모델\n  • embedding-001",
				"현재 설정: gemini-2.5-flash",
			},
		},
		{
			name: "model error without models",
			err:  errors.New("model is not supported"),
			want: []string{"사용 가능한 모델을 가져올 수 없습니다"},
		},
		{
			name: "generic",
			err:  errors.New("connection reset"),
			want: []string{"오류가 발생했습니다: connection reset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(log.NewNop(), &fakeEngine{}, &fakeLLM{models: tt.models}, nil, Config{})
			got := uc.describeLLMError(context.Background(), tt.err)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("expected %q in:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("did not expect %q in:\n%s", w, got)
				}
			}
		})
	}
}

func TestRetryText(t *testing.T) {
	if got := retryText(42.9); got != "42초" {
		t.Errorf("got %q", got)
	}
	if got := retryText(125); got != "2분 5초" {
		t.Errorf("got %q", got)
	}
}

package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"zitta/pkg/gemini"
	"zitta/pkg/llmprovider"
)

var (
	retryPattern = regexp.MustCompile(`Please retry in ([\d.]+)s`)
	modelPattern = regexp.MustCompile(`model: ([a-z0-9-]+)`)
)

// describeLLMError turns a failed generation into text the user can act on.
func (uc *implUseCase) describeLLMError(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, llmprovider.ErrProviderTimeout) {
		return timeoutReply
	}

	switch gemini.ClassifyError(err) {
	case gemini.ErrorKindQuota:
		return formatQuotaError(err, uc.llm.Primary())
	case gemini.ErrorKindModel:
		models, lerr := uc.llm.ListModels(ctx)
		if lerr != nil {
			uc.l.Warnf(ctx, "%s: list models: %v", LogPrefixLLMError, lerr)
		}
		return formatModelError(err, uc.llm.Primary(), models)
	}
	return fmt.Sprintf("오류가 발생했습니다: %v", err)
}

func formatQuotaError(err error, configured string) string {
	msg := err.Error()

	model := configured
	if m := modelPattern.FindStringSubmatch(msg); m != nil {
		model = m[1]
	}

	var b strings.Builder
	b.WriteString("⚠️ API 할당량 초과\n\n")
	b.WriteString("문제: Gemini API의 무료 티어 할당량을 초과했습니다.\n")
	fmt.Fprintf(&b, "현재 모델: %s\n", model)
	if m := retryPattern.FindStringSubmatch(msg); m != nil {
		if wait, perr := strconv.ParseFloat(m[1], 64); perr == nil {
			fmt.Fprintf(&b, "재시도 가능 시간: 약 %s 후\n", retryText(wait))
		}
	}
	b.WriteString("\n💡 해결 방법:\n")
	b.WriteString("  1. 잠시 기다리기: 할당량이 리셋될 때까지 기다리세요 (보통 1분 또는 1일 단위)\n")
	b.WriteString("  2. 다른 모델 사용: 할당량이 더 많은 모델로 변경하세요 (추천: gemini-2.5-flash 또는 gemini-2.5-flash-lite)\n")
	b.WriteString("  3. 유료 플랜으로 업그레이드: Google AI Studio에서 플랜을 업그레이드하세요\n\n")
	b.WriteString("할당량 정보: https://ai.google.dev/gemini-api/docs/rate-limits\n")
	b.WriteString("사용량 확인: https://ai.dev/usage?tab=rate-limit")
	return b.String()
}

func retryText(seconds float64) string {
	total := int(seconds)
	m, s := total/60, total%60
	if m > 0 {
		return fmt.Sprintf("%d분 %d초", m, s)
	}
	return fmt.Sprintf("%d초", s)
}

type modelGroup struct {
	title  string
	models []string
}

func groupModels(available []string) []modelGroup {
	groups := []modelGroup{
		{title: "⭐ 추천 모델 (안정적)"},
		{title: "🤖 Gemini 모델"},
		{title: "💎 Gemma 모델"},
		{title: "🔬 Preview/Experimental 모델"},
		{title: "📦 기타 모델"},
	}
	for _, m := range available {
		lower := strings.ToLower(m)
		var i int
		switch {
		case slices.Contains(recommendedModels, m):
			i = 0
		case strings.HasPrefix(m, "gemini-"):
			i = 1
			if strings.Contains(lower, "preview") || strings.Contains(lower, "exp") {
				i = 3
			}
		case strings.HasPrefix(m, "gemma-"):
			i = 2
		default:
			i = 4
		}
		groups[i].models = append(groups[i].models, m)
	}
	for i := range groups {
		slices.Sort(groups[i].models)
	}
	return groups
}

func formatModelError(err error, configured string, available []string) string {
	var b strings.Builder
	b.WriteString("❌ 모델 오류\n")
	b.WriteString(err.Error())
	b.WriteString("\n\n")

	if len(available) == 0 {
		b.WriteString("⚠️ 사용 가능한 모델을 가져올 수 없습니다. API 키를 확인하세요.")
		return b.String()
	}

	b.WriteString("📋 사용 가능한 모델 목록\n")
	for _, g := range groupModels(available) {
		if len(g.models) == 0 {
			continue
		}
		b.WriteString("\n" + g.title + "\n")
		for _, m := range g.models {
			b.WriteString("  • " + m + "\n")
		}
	}

	b.WriteString("\n💡 해결 방법\n")
	b.WriteString("  1. .env 파일을 열어주세요\n")
	b.WriteString("  2. LLM_MODEL 값을 위 목록 중 하나로 변경하세요\n")
	b.WriteString("  3. 추천: gemini-2.5-flash 또는 gemini-2.5-flash-lite\n")
	fmt.Fprintf(&b, "  4. 현재 설정: %s", configured)
	return b.String()
}

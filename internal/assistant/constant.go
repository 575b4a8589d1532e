package assistant

const (
	LogPrefixChat     = "internal.assistant.Chat"
	LogPrefixFinalize = "internal.assistant.Finalize"
	LogPrefixLLMError = "internal.assistant.describeLLMError"

	DefaultSystemPrompt = "당신은 ZiTTA입니다. 사용자의 개인 AI 비서로서 똑똑하면서도 유머러스한 대화를 할 수 있습니다.\n" +
		"사용자의 명령을 이해하고 적절히 응답하세요. 할 일 관리, 메모, 파일 탐색 등의 작업을 도와줄 수 있습니다."

	emptyLLMReply = "응답을 받을 수 없습니다. 다시 시도해주세요."
	timeoutReply  = "응답 시간이 초과되었습니다. 잠시 후 다시 시도해주세요."
)

var recommendedModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.5-pro",
	"gemini-flash-latest",
	"gemini-pro-latest",
}

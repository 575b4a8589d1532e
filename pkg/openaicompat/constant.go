package openaicompat

import "time"

const (
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"

	roleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Vendor presets. Both speak the chat-completions dialect.
var (
	Qwen = Preset{
		Name:    "qwen",
		BaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		Model:   "qwen-plus",
	}
	DeepSeek = Preset{
		Name:    "deepseek",
		BaseURL: "https://api.deepseek.com/v1",
		Model:   "deepseek-chat",
	}
)

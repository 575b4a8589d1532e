package conversation

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

func UserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text, At: time.Now()}
}

func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text, At: time.Now()}
}

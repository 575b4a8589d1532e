package engine

const (
	LogPrefixHandle   = "internal.engine.Handle"
	LogPrefixFinalize = "internal.engine.Finalize"

	// MemoListLimit caps the memo listing; todo listings are unbounded.
	MemoListLimit = 10
	// FileListLimit caps how many directory entries are rendered.
	FileListLimit = 20

	UnknownPlugin = "Unknown"
)

// Prompts sent to the LLM to extract a title; the raw message is appended verbatim.
const (
	todoTitlePrompt = "다음 명령에서 할 일 제목을 추출해주세요. 제목만 간단히 답변하세요: "
	memoTitlePrompt = "다음 명령에서 메모 제목을 추출해주세요. 제목만 간단히 답변하세요: "
)

const (
	todoListHeader = "현재 할 일 목록:\n"
	todoListEmpty  = "할 일이 없습니다."
	memoListHeader = "현재 메모 목록 (최근 10개):\n"
	memoListEmpty  = "메모가 없습니다."
	fileListEmpty  = "파일이 없습니다."

	emptyMessageReply = "메시지를 입력해주세요."

	todoAdded     = "할 일 '%s'을 추가했습니다."
	memoAdded     = "메모 '%s'을 추가했습니다."
	todoAddFailed = "할 일 '%s'을 추가하지 못했습니다."
	memoAddFailed = "메모 '%s'을 추가하지 못했습니다."

	dirIcon  = "📁"
	fileIcon = "📄"
)

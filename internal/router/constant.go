package router

// Log prefixes
const (
	LogPrefixLoadRules = "internal.router.LoadRules"
)

// Default keyword groups. Matching is substring containment on the lower-cased message.
var (
	defaultTodoList = []string{"할 일 목록", "할일 목록", "할 일 리스트", "할일 리스트", "할 일 보기", "할일 보기", "todo list"}
	defaultTodo     = []string{"할 일", "할일", "todo", "해야 할", "해야할", "해야"}
	defaultMemoList = []string{"메모 목록", "메모 리스트", "메모 보기", "메모 검색", "memo list"}
	defaultMemo     = []string{"메모", "memo", "기억", "저장"}
	defaultCreate   = []string{"추가", "등록", "만들", "생성", "create", "add"}

	defaultFile     = []string{"파일", "file", "폴더", "folder", "디렉토리", "directory"}
	defaultFileDir  = []string{"폴더", "folder", "디렉토리", "directory"}
	defaultFileOnly = []string{"파일", "file"}
)

package engine

import (
	"context"
	"fmt"
	"strings"

	"zitta/internal/fileexplorer"
	"zitta/internal/intent"
	"zitta/internal/memo"
	"zitta/internal/plugin"
	"zitta/internal/todo"
)

type sessionKey struct{}

// WithSession attaches the caller's session id, passed on to plugins.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func sessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// Handle dispatches message: plugins first, then the router, then the local
// todo/memo/file handlers. Chat and create intents come back pending.
func (e *Engine) Handle(ctx context.Context, message, currentDirectory string) DispatchResult {
	if e.plugins != nil {
		pc := plugin.Context{SessionID: sessionFrom(ctx), CurrentDirectory: currentDirectory}
		if in, ok := e.plugins.HandleCommand(ctx, message, pc); ok {
			return e.fromPlugin(in)
		}
	}

	in := e.router.Route(message)
	e.l.Debugf(ctx, "%s: routed to %s/%s", LogPrefixHandle, in.Type(), in.Action())

	switch in.Type() {
	case intent.TypeTodo:
		return e.handleTodo(ctx, in, message)
	case intent.TypeMemo:
		return e.handleMemo(ctx, in, message)
	case intent.TypeFile:
		return e.handleFile(ctx, in, currentDirectory)
	default:
		if strings.TrimSpace(message) == "" {
			return finalized(intent.TypeChat, intent.ActionNone, emptyMessageReply)
		}
		return pending(intent.TypeChat, intent.ActionNone, message)
	}
}

func (e *Engine) fromPlugin(in intent.Intent) DispatchResult {
	name := in.String(intent.KeyPlugin)
	if name == "" {
		name = strings.TrimPrefix(in.Source(), intent.SourcePluginPrefix)
	}
	if name == "" {
		name = UnknownPlugin
	}

	res := finalized(intent.TypePlugin, in.Action(), in.String(intent.KeyResponse))
	res.Payload = in.Payload()
	res.PluginName = name
	return res
}

func (e *Engine) handleTodo(ctx context.Context, in intent.Intent, message string) DispatchResult {
	if in.Action() == intent.ActionCreate {
		return pending(intent.TypeTodo, intent.ActionCreate, todoTitlePrompt+message)
	}

	open := false
	todos, err := e.todos.List(ctx, todo.ListInput{Completed: &open})
	if err != nil {
		e.l.Errorf(ctx, "%s: list todos: %v", LogPrefixHandle, err)
	}
	if len(todos) == 0 {
		return finalized(intent.TypeTodo, intent.ActionList, todoListEmpty)
	}

	titles := make([]string, len(todos))
	for i, t := range todos {
		titles[i] = t.Title
	}
	return finalized(intent.TypeTodo, intent.ActionList, todoListHeader+bullets(titles))
}

func (e *Engine) handleMemo(ctx context.Context, in intent.Intent, message string) DispatchResult {
	if in.Action() == intent.ActionCreate {
		return pending(intent.TypeMemo, intent.ActionCreate, memoTitlePrompt+message)
	}

	memos, err := e.memos.List(ctx, memo.ListInput{Limit: MemoListLimit})
	if err != nil {
		e.l.Errorf(ctx, "%s: list memos: %v", LogPrefixHandle, err)
	}
	if len(memos) == 0 {
		return finalized(intent.TypeMemo, intent.ActionList, memoListEmpty)
	}
	if len(memos) > MemoListLimit {
		memos = memos[:MemoListLimit]
	}

	titles := make([]string, len(memos))
	for i, m := range memos {
		titles[i] = m.Title
	}
	return finalized(intent.TypeMemo, intent.ActionList, memoListHeader+bullets(titles))
}

func (e *Engine) handleFile(ctx context.Context, in intent.Intent, dir string) DispatchResult {
	if dir == "" {
		dir = fileexplorer.DefaultDirectory
	}
	filter := in.Filter()

	res := finalized(intent.TypeFile, intent.ActionList, fileListEmpty)
	res.Payload = map[string]any{intent.KeyFilter: string(filter)}

	entries := e.files.ListDirectory(ctx, dir)
	if len(entries) == 0 {
		return res
	}

	shown := make([]fileexplorer.Entry, 0, len(entries))
	for _, entry := range entries {
		if filter == intent.FilterDir && !entry.IsDir || filter == intent.FilterFile && entry.IsDir {
			continue
		}
		shown = append(shown, entry)
	}

	var text string
	if len(shown) == 0 {
		text = fmt.Sprintf("%s이(가) 없습니다.", filterNoun(filter))
	} else {
		if len(shown) > FileListLimit {
			shown = shown[:FileListLimit]
		}
		lines := make([]string, len(shown))
		for i, entry := range shown {
			icon := fileIcon
			if entry.IsDir {
				icon = dirIcon
			}
			lines[i] = icon + " " + entry.Name
		}
		text = fmt.Sprintf("현재 디렉토리 (%s) 내용 (%s):\n%s", dir, filterLabel(filter), bullets(lines))
	}
	res.Response = &text
	return res
}

// ProcessLLMResponse is the second phase of a todo or memo create: the
// trimmed LLM text becomes the title. An empty title stores nothing and the
// raw text is returned as the response. Other types pass the text through.
func (e *Engine) ProcessLLMResponse(ctx context.Context, llmText string, t intent.Type, a intent.Action) DispatchResult {
	if a != intent.ActionCreate || (t != intent.TypeTodo && t != intent.TypeMemo) {
		return finalized(t, a, llmText)
	}

	title := strings.TrimSpace(llmText)
	if title == "" {
		e.l.Warnf(ctx, "%s: empty %s title, nothing stored", LogPrefixFinalize, t)
		return finalized(t, a, llmText)
	}

	var err error
	if t == intent.TypeTodo {
		_, err = e.todos.Add(ctx, todo.CreateInput{Title: title})
	} else {
		_, err = e.memos.Add(ctx, memo.CreateInput{Title: title})
	}

	if err != nil {
		e.l.Errorf(ctx, "%s: add %s %q: %v", LogPrefixFinalize, t, title, err)
		return finalized(t, a, fmt.Sprintf(pick(t, todoAddFailed, memoAddFailed), title))
	}
	return finalized(t, a, fmt.Sprintf(pick(t, todoAdded, memoAdded), title))
}

// Finalize resolves a pending result with the LLM's answer.
func (e *Engine) Finalize(ctx context.Context, pendingResult DispatchResult, llmText string) DispatchResult {
	return e.ProcessLLMResponse(ctx, llmText, pendingResult.Type, pendingResult.Action)
}

func bullets(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}

func filterLabel(f intent.Filter) string {
	switch f {
	case intent.FilterDir:
		return "폴더만"
	case intent.FilterFile:
		return "파일만"
	}
	return "전체"
}

func filterNoun(f intent.Filter) string {
	switch f {
	case intent.FilterDir:
		return "폴더"
	case intent.FilterFile:
		return "파일"
	}
	return "항목"
}

func pick(t intent.Type, todoText, memoText string) string {
	if t == intent.TypeTodo {
		return todoText
	}
	return memoText
}

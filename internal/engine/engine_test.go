package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"zitta/internal/fileexplorer"
	"zitta/internal/intent"
	"zitta/internal/memo"
	"zitta/internal/plugin"
	"zitta/internal/router"
	"zitta/internal/todo"
	"zitta/pkg/log"
)

type stubRouter struct {
	in    intent.Intent
	calls int
}

func (r *stubRouter) Route(message string) intent.Intent {
	r.calls++
	return r.in
}

func (r *stubRouter) Match(message string) router.Match {
	return router.Match{Intent: r.in}
}

type stubPlugins struct {
	in  intent.Intent
	ok  bool
	got plugin.Context
}

func (p *stubPlugins) HandleCommand(ctx context.Context, message string, pc plugin.Context) (intent.Intent, bool) {
	p.got = pc
	return p.in, p.ok
}

type fakeTodos struct {
	todo.UseCase
	items   []todo.Todo
	added   []string
	listIn  todo.ListInput
	listErr error
	addErr  error
}

func (f *fakeTodos) Add(ctx context.Context, in todo.CreateInput) (todo.Todo, error) {
	if f.addErr != nil {
		return todo.Todo{}, f.addErr
	}
	f.added = append(f.added, in.Title)
	return todo.Todo{ID: int64(len(f.added)), Title: in.Title}, nil
}

func (f *fakeTodos) List(ctx context.Context, in todo.ListInput) ([]todo.Todo, error) {
	f.listIn = in
	return f.items, f.listErr
}

type fakeMemos struct {
	memo.UseCase
	items  []memo.Memo
	added  []string
	listIn memo.ListInput
}

func (f *fakeMemos) Add(ctx context.Context, in memo.CreateInput) (memo.Memo, error) {
	f.added = append(f.added, in.Title)
	return memo.Memo{ID: int64(len(f.added)), Title: in.Title}, nil
}

func (f *fakeMemos) List(ctx context.Context, in memo.ListInput) ([]memo.Memo, error) {
	f.listIn = in
	return f.items, nil
}

type fakeFiles struct {
	fileexplorer.Explorer
	entries []fileexplorer.Entry
	dir     string
}

func (f *fakeFiles) ListDirectory(ctx context.Context, path string) []fileexplorer.Entry {
	f.dir = path
	return f.entries
}

type fixture struct {
	engine  *Engine
	router  *stubRouter
	plugins *stubPlugins
	todos   *fakeTodos
	memos   *fakeMemos
	files   *fakeFiles
}

func newFixture(t *testing.T, routed intent.Intent) *fixture {
	t.Helper()
	f := &fixture{
		router:  &stubRouter{in: routed},
		plugins: &stubPlugins{},
		todos:   &fakeTodos{},
		memos:   &fakeMemos{},
		files:   &fakeFiles{},
	}
	e, err := New(log.NewNop(), Options{
		Plugins: f.plugins,
		Router:  f.router,
		Todos:   f.todos,
		Memos:   f.memos,
		Files:   f.files,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f.engine = e
	return f
}

func checkInvariant(t *testing.T, res DispatchResult) {
	t.Helper()
	if res.NeedsLLM != (res.Response == nil) {
		t.Errorf("needs_llm=%v but response=%v", res.NeedsLLM, res.Response)
	}
	if res.NeedsLLM && res.LLMPrompt == "" {
		t.Errorf("pending result without prompt")
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	if _, err := New(log.NewNop(), Options{}); err == nil {
		t.Error("expected validation error")
	}
}

func TestHandle_PluginShortCircuit(t *testing.T) {
	f := newFixture(t, intent.New(intent.TypeTodo, intent.ActionList, nil, intent.SourceRouter))
	f.plugins.in, _ = plugin.Normalize(plugin.RawMapping{"type": "plugin_response", "plugin": "X", "response": "R"}, "x")
	f.plugins.ok = true

	ctx := WithSession(context.Background(), "s-1")
	res := f.engine.Handle(ctx, "할 일 목록", "/tmp")

	checkInvariant(t, res)
	if res.Type != intent.TypePlugin || res.Text() != "R" || res.PluginName != "X" || res.NeedsLLM {
		t.Errorf("unexpected result %+v", res)
	}
	if f.router.calls != 0 {
		t.Errorf("router must not be consulted after a plugin hit")
	}
	if f.plugins.got.SessionID != "s-1" || f.plugins.got.CurrentDirectory != "/tmp" {
		t.Errorf("unexpected plugin context %+v", f.plugins.got)
	}
}

func TestHandle_PluginNameFallback(t *testing.T) {
	f := newFixture(t, intent.Chat(intent.SourceRouter))
	f.plugins.in = intent.New(intent.TypePlugin, "beep", map[string]any{"response": "boop"}, intent.PluginSource("Beeper"))
	f.plugins.ok = true

	res := f.engine.Handle(context.Background(), "beep", "")
	if res.PluginName != "Beeper" || res.Action != "beep" || res.Text() != "boop" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestHandle_Chat(t *testing.T) {
	f := newFixture(t, intent.Chat(intent.SourceRouter))

	res := f.engine.Handle(context.Background(), "오늘 기분 어때?", "")
	checkInvariant(t, res)
	if res.Type != intent.TypeChat || !res.Pending() || res.LLMPrompt != "오늘 기분 어때?" || res.Action != intent.ActionNone {
		t.Errorf("unexpected result %+v", res)
	}

	for _, msg := range []string{"", "   ", "\t\n"} {
		t.Run("blank "+strconv.Quote(msg), func(t *testing.T) {
			res := f.engine.Handle(context.Background(), msg, "")
			checkInvariant(t, res)
			if res.Type != intent.TypeChat || res.Pending() || res.Text() != emptyMessageReply {
				t.Errorf("unexpected result %+v", res)
			}
		})
	}
}

func TestHandle_CreateIsPending(t *testing.T) {
	tests := []struct {
		name   string
		typ    intent.Type
		phrase string
	}{
		{name: "todo", typ: intent.TypeTodo, phrase: "할 일 제목"},
		{name: "memo", typ: intent.TypeMemo, phrase: "메모 제목"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, intent.New(tt.typ, intent.ActionCreate, nil, intent.SourceRouter))
			msg := "프로젝트 문서 작성하기"

			res := f.engine.Handle(context.Background(), msg, "")
			checkInvariant(t, res)
			if !res.Pending() || !res.IsCreate() || res.Type != tt.typ {
				t.Fatalf("unexpected result %+v", res)
			}
			if !strings.Contains(res.LLMPrompt, tt.phrase) || !strings.Contains(res.LLMPrompt, msg) {
				t.Errorf("prompt %q lacks phrase or message", res.LLMPrompt)
			}
			if len(f.todos.added)+len(f.memos.added) != 0 {
				t.Errorf("Handle must not mutate stores")
			}
		})
	}
}

func TestHandle_TodoList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f := newFixture(t, intent.New(intent.TypeTodo, intent.ActionList, nil, intent.SourceRouter))
		res := f.engine.Handle(context.Background(), "할 일 목록 보기", "")
		checkInvariant(t, res)
		if res.Text() != "할 일이 없습니다." {
			t.Errorf("unexpected response %q", res.Text())
		}
		if f.todos.listIn.Completed == nil || *f.todos.listIn.Completed {
			t.Errorf("expected open todos only, got %+v", f.todos.listIn)
		}
	})

	t.Run("store error degrades to empty", func(t *testing.T) {
		f := newFixture(t, intent.New(intent.TypeTodo, intent.ActionList, nil, intent.SourceRouter))
		f.todos.listErr = errors.New("disk gone")
		if res := f.engine.Handle(context.Background(), "할 일 목록", ""); res.Text() != "할 일이 없습니다." {
			t.Errorf("unexpected response %q", res.Text())
		}
	})

	t.Run("listing is unbounded", func(t *testing.T) {
		f := newFixture(t, intent.New(intent.TypeTodo, intent.ActionList, nil, intent.SourceRouter))
		for i := range 15 {
			f.todos.items = append(f.todos.items, todo.Todo{Title: fmt.Sprintf("t%d", i)})
		}
		res := f.engine.Handle(context.Background(), "할 일 목록", "")
		if !strings.HasPrefix(res.Text(), "현재 할 일 목록:\n- t0\n") || strings.Count(res.Text(), "\n- ") != 15 {
			t.Errorf("unexpected response %q", res.Text())
		}
	})
}

func TestHandle_MemoList(t *testing.T) {
	f := newFixture(t, intent.New(intent.TypeMemo, intent.ActionList, nil, intent.SourceRouter))

	if res := f.engine.Handle(context.Background(), "메모 목록", ""); res.Text() != "메모가 없습니다." {
		t.Errorf("unexpected response %q", res.Text())
	}
	if f.memos.listIn.Limit != MemoListLimit {
		t.Errorf("expected limit %d, got %d", MemoListLimit, f.memos.listIn.Limit)
	}

	f.memos.items = []memo.Memo{{Title: "b"}, {Title: "a"}}
	res := f.engine.Handle(context.Background(), "메모 목록", "")
	if res.Text() != "현재 메모 목록 (최근 10개):\n- b\n- a" {
		t.Errorf("unexpected response %q", res.Text())
	}
}

func mixedEntries(dirs, files int) []fileexplorer.Entry {
	var out []fileexplorer.Entry
	for i := range dirs {
		out = append(out, fileexplorer.Entry{Name: fmt.Sprintf("d%02d", i), IsDir: true})
	}
	for i := range files {
		out = append(out, fileexplorer.Entry{Name: fmt.Sprintf("f%02d.txt", i)})
	}
	return out
}

func TestHandle_File(t *testing.T) {
	tests := []struct {
		name      string
		filter    intent.Filter
		entries   []fileexplorer.Entry
		dir       string
		wantDir   string
		wantText  string
		wantLines int
		noFiles   bool
	}{
		{
			name:      "dirs only truncated",
			filter:    intent.FilterDir,
			entries:   mixedEntries(25, 3),
			dir:       "/home",
			wantDir:   "/home",
			wantText:  "현재 디렉토리 (/home) 내용 (폴더만):\n- 📁 d00",
			wantLines: 20,
			noFiles:   true,
		},
		{
			name:      "all",
			filter:    intent.FilterAll,
			entries:   mixedEntries(1, 1),
			wantDir:   ".",
			wantText:  "현재 디렉토리 (.) 내용 (전체):\n- 📁 d00\n- 📄 f00.txt",
			wantLines: 2,
		},
		{
			name:     "files only none",
			filter:   intent.FilterFile,
			entries:  mixedEntries(2, 0),
			wantDir:  ".",
			wantText: "파일이(가) 없습니다.",
		},
		{
			name:     "dirs only none",
			filter:   intent.FilterDir,
			entries:  mixedEntries(0, 2),
			wantDir:  ".",
			wantText: "폴더이(가) 없습니다.",
		},
		{
			name:     "empty directory",
			filter:   intent.FilterDir,
			wantDir:  ".",
			wantText: "파일이 없습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, intent.FileList(tt.filter, intent.SourceRouter))
			f.files.entries = tt.entries

			res := f.engine.Handle(context.Background(), "폴더 보여줘", tt.dir)
			checkInvariant(t, res)

			if f.files.dir != tt.wantDir {
				t.Errorf("listed %q, want %q", f.files.dir, tt.wantDir)
			}
			if got := res.Payload[intent.KeyFilter]; got != string(tt.filter) {
				t.Errorf("payload filter = %v, want %s", got, tt.filter)
			}
			if !strings.HasPrefix(res.Text(), tt.wantText) {
				t.Errorf("response = %q, want prefix %q", res.Text(), tt.wantText)
			}
			if tt.wantLines > 0 && strings.Count(res.Text(), "\n- ") != tt.wantLines {
				t.Errorf("rendered %d lines, want %d", strings.Count(res.Text(), "\n- "), tt.wantLines)
			}
			if tt.noFiles && strings.Contains(res.Text(), "📄") {
				t.Errorf("dir filter rendered a file: %q", res.Text())
			}
		})
	}
}

func TestProcessLLMResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("todo create", func(t *testing.T) {
		f := newFixture(t, intent.Chat(intent.SourceRouter))
		res := f.engine.ProcessLLMResponse(ctx, "  프로젝트 문서 작성\n", intent.TypeTodo, intent.ActionCreate)
		checkInvariant(t, res)
		if res.Text() != "할 일 '프로젝트 문서 작성'을 추가했습니다." {
			t.Errorf("unexpected response %q", res.Text())
		}
		if len(f.todos.added) != 1 || f.todos.added[0] != "프로젝트 문서 작성" {
			t.Errorf("unexpected store state %v", f.todos.added)
		}
	})

	t.Run("memo create via Finalize", func(t *testing.T) {
		f := newFixture(t, intent.New(intent.TypeMemo, intent.ActionCreate, nil, intent.SourceRouter))
		p := f.engine.Handle(ctx, "회의 메모", "")
		res := f.engine.Finalize(ctx, p, "회의록")
		if res.Text() != "메모 '회의록'을 추가했습니다." || len(f.memos.added) != 1 {
			t.Errorf("unexpected %q %v", res.Text(), f.memos.added)
		}
	})

	t.Run("empty title stores nothing", func(t *testing.T) {
		f := newFixture(t, intent.Chat(intent.SourceRouter))
		res := f.engine.ProcessLLMResponse(ctx, "   ", intent.TypeTodo, intent.ActionCreate)
		checkInvariant(t, res)
		if res.Text() != "   " || len(f.todos.added) != 0 {
			t.Errorf("unexpected %q %v", res.Text(), f.todos.added)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t, intent.Chat(intent.SourceRouter))
		f.todos.addErr = errors.New("locked")
		res := f.engine.ProcessLLMResponse(ctx, "x", intent.TypeTodo, intent.ActionCreate)
		if res.Text() != "할 일 'x'을 추가하지 못했습니다." {
			t.Errorf("unexpected response %q", res.Text())
		}
	})

	t.Run("passthrough", func(t *testing.T) {
		f := newFixture(t, intent.Chat(intent.SourceRouter))
		res := f.engine.ProcessLLMResponse(ctx, "안녕하세요!", intent.TypeChat, intent.ActionNone)
		if res.Type != intent.TypeChat || res.Text() != "안녕하세요!" || res.NeedsLLM {
			t.Errorf("unexpected result %+v", res)
		}
	})
}

func TestHandle_WithKeywordRouter(t *testing.T) {
	kr, err := router.New(router.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	e, err := New(log.NewNop(), Options{Router: kr, Todos: &fakeTodos{}, Memos: &fakeMemos{}, Files: &fakeFiles{}})
	if err != nil {
		t.Fatal(err)
	}

	res := e.Handle(context.Background(), "할 일 목록 보기", "")
	if res.Type != intent.TypeTodo || res.Action != intent.ActionList || res.Text() != "할 일이 없습니다." {
		t.Errorf("unexpected result %+v", res)
	}
}

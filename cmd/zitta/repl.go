package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"zitta/internal/assistant"
	"zitta/internal/plugin"
)

const (
	prompt       = "> "
	speaker      = "ZiTTA: "
	cmdExit      = "/exit"
	cmdClear     = "/clear"
	welcome      = "안녕하세요! ZiTTA입니다. 무엇을 도와드릴까요? (/exit 종료, /clear 대화 초기화)"
	clearedReply = "대화 기록을 지웠습니다."
	goodbye      = "안녕히 가세요!"
)

type chatter interface {
	Chat(ctx context.Context, sessionID, message, currentDirectory string) (assistant.Reply, error)
	ClearSession(ctx context.Context, sessionID string) error
}

type repl struct {
	chat    chatter
	session string
	dir     string
}

func newREPL(c chatter, sessionID, dir string) *repl {
	return &repl{chat: c, session: sessionID, dir: dir}
}

// Run reads one message per line until EOF, /exit or cancellation.
func (r *repl) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, speaker+welcome)

	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		fmt.Fprint(out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-errc
			}
			if done := r.handleLine(ctx, out, strings.TrimSpace(line)); done {
				return nil
			}
		}
	}
}

func (r *repl) handleLine(ctx context.Context, out io.Writer, line string) bool {
	switch line {
	case "":
		return false
	case cmdExit:
		fmt.Fprintln(out, speaker+goodbye)
		return true
	case cmdClear:
		if r.session != "" {
			if err := r.chat.ClearSession(ctx, r.session); err != nil {
				fmt.Fprintln(out, "error:", err)
				return false
			}
		}
		fmt.Fprintln(out, speaker+clearedReply)
		return false
	}

	if err := r.Ask(ctx, out, line); err != nil {
		fmt.Fprintln(out, "error:", err)
	}
	return false
}

// Ask sends one message and prints the answer. The session id is kept for later messages.
func (r *repl) Ask(ctx context.Context, out io.Writer, message string) error {
	reply, err := r.chat.Chat(ctx, r.session, message, r.dir)
	if err != nil {
		return err
	}
	r.session = reply.SessionID
	fmt.Fprintln(out, speaker+reply.Text)
	return nil
}

func printPlugins(out io.Writer, infos []plugin.Info) {
	if len(infos) == 0 {
		fmt.Fprintln(out, "no plugins loaded")
		return
	}
	for _, p := range infos {
		state := "enabled"
		if !p.Enabled {
			state = "disabled"
		}
		fmt.Fprintf(out, "%-12s %-16s %-8s %-8s %s\n", p.Key, p.Name, p.Version, state, strings.Join(p.Commands, ", "))
	}
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

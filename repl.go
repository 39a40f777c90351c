package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/sealor/ai-copywriter/pkg/chat"
	"github.com/sealor/ai-copywriter/pkg/render"
)

const helpText = `Type a short product or service description, or one of:
  /history   list previous prompts
  /load N    go back to the N-th prompt of /history
  /clear     delete all history
  /quit      exit`

type repl struct {
	session *chat.Session
	out     io.Writer
}

// handle processes one input line and reports whether the loop should stop.
func (r *repl) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if !strings.HasPrefix(line, "/") {
		turn, err := r.session.Submit(ctx, line)
		if err != nil {
			fmt.Fprintln(r.out, "Error:", err)
			return false
		}
		render.Turn(r.out, turn)
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		fmt.Fprintln(r.out, helpText)
	case "/history":
		render.Prompts(r.out, r.session.Prompts())
	case "/load":
		prompts := r.session.Prompts()
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || n < 1 || n > len(prompts) {
			fmt.Fprintf(r.out, "Usage: /load N with N between 1 and %d\n", len(prompts))
			return false
		}
		render.Turns(r.out, r.session.Select(prompts[n-1]))
	case "/clear":
		if err := r.session.Clear(); err != nil {
			fmt.Fprintln(r.out, "Error:", err)
			return false
		}
		fmt.Fprintln(r.out, "History cleared.")
	default:
		fmt.Fprintln(r.out, helpText)
	}
	return false
}

func runTerminal(session *chat.Session) error {
	t := term.NewTerminal(os.Stdin, "> ")
	r := &repl{session: session, out: t}

	render.Turns(t, session.History())

	for {
		fd := int(os.Stdin.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}

		width, height, err := term.GetSize(fd)
		if err != nil {
			term.Restore(fd, oldState)
			return err
		}
		t.SetSize(width, height)

		line, err := t.ReadLine()
		restoreErr := term.Restore(fd, oldState)

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if restoreErr != nil {
			return restoreErr
		}

		if r.handle(context.Background(), line) {
			return nil
		}
	}
}

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sealor/ai-copywriter/pkg/chat"
	"github.com/sealor/ai-copywriter/pkg/persistence"
)

type staticGenerator string

func (g staticGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return string(g), nil
}

func testRepl(t *testing.T) (*repl, *bytes.Buffer) {
	t.Helper()
	store, err := persistence.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var buf bytes.Buffer
	session := chat.NewSession(store, staticGenerator("SEO_TITLE: Judul\nCTA: Hubungi"), logger)
	return &repl{session: session, out: &buf}, &buf
}

func TestReplSubmit(t *testing.T) {
	r, out := testRepl(t)

	if r.handle(context.Background(), "produk skincare") {
		t.Fatal("submit stopped the loop")
	}
	if !strings.Contains(out.String(), "SEO Title") || !strings.Contains(out.String(), "Hubungi") {
		t.Errorf("reply not rendered:\n%s", out.String())
	}
}

func TestReplHistoryAndLoad(t *testing.T) {
	r, out := testRepl(t)
	ctx := context.Background()

	r.handle(ctx, "produk skincare")
	r.handle(ctx, "jasa laundry")
	out.Reset()

	r.handle(ctx, "/history")
	if !strings.Contains(out.String(), "1.") || !strings.Contains(out.String(), "jasa laundry") {
		t.Errorf("/history output:\n%s", out.String())
	}

	out.Reset()
	r.handle(ctx, "/load 2")
	if got := r.session.History(); len(got) != 1 || got[0].Content != "produk skincare" {
		t.Errorf("History() after /load 2 = %+v", got)
	}

	out.Reset()
	r.handle(ctx, "/load 9")
	if !strings.Contains(out.String(), "Usage") {
		t.Errorf("/load out of range output:\n%s", out.String())
	}
}

func TestReplClearAndQuit(t *testing.T) {
	r, out := testRepl(t)
	ctx := context.Background()

	r.handle(ctx, "produk skincare")
	r.handle(ctx, "/clear")
	if !strings.Contains(out.String(), "History cleared.") {
		t.Errorf("/clear output:\n%s", out.String())
	}
	if len(r.session.History()) != 0 {
		t.Error("/clear left turns behind")
	}

	if !r.handle(ctx, "/quit") {
		t.Error("/quit did not stop the loop")
	}
}

func TestReplUnknownCommandShowsHelp(t *testing.T) {
	r, out := testRepl(t)
	r.handle(context.Background(), "/nope")
	if !strings.Contains(out.String(), "/history") {
		t.Errorf("help not shown:\n%s", out.String())
	}
}

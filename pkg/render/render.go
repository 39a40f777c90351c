// Package render prints turns and the prompt history for the terminal.
package render

import (
	"fmt"
	"io"

	"github.com/sealor/ai-copywriter/pkg/persistence"
	"github.com/sealor/ai-copywriter/pkg/sections"
)

const rule = "────────────────────────────────────────"

// Turn writes one turn. Generation turns are parsed on every call; an
// unparseable reply prints as an empty frame.
func Turn(w io.Writer, turn persistence.Turn) {
	if turn.Role == persistence.RoleUser {
		fmt.Fprintln(w, userStyle.Render("> "+turn.Content))
		return
	}

	switch turn.Kind {
	case persistence.KindValidationRejection, persistence.KindGenerationFailure:
		fmt.Fprintln(w, noticeStyle.Render(turn.Content))
	default:
		Sections(w, sections.Parse(turn.Content))
	}
	fmt.Fprintln(w)
}

func Sections(w io.Writer, parsed []sections.Section) {
	fmt.Fprintln(w, dimStyle.Render(rule))
	for _, s := range parsed {
		fmt.Fprintln(w, sectionTitleStyle.Render(s.Title))
		fmt.Fprintln(w, bodyStyle.Render(s.Body))
	}
	fmt.Fprintln(w, dimStyle.Render(rule))
}

// Turns writes a whole log, oldest first.
func Turns(w io.Writer, turns []persistence.Turn) {
	for _, turn := range turns {
		Turn(w, turn)
	}
}

// Prompts writes the prompt history as a numbered list, most recent first.
func Prompts(w io.Writer, prompts []string) {
	if len(prompts) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(no history)"))
		return
	}
	for i, p := range prompts {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render(fmt.Sprintf("%2d.", i+1)), p)
	}
}

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sealor/ai-copywriter/pkg/persistence"
	"github.com/sealor/ai-copywriter/pkg/sections"
)

//go:embed templates/*.html
var templateFiles embed.FS

// loadTemplates parses the layout and clones it once per page. Panics on
// syntax errors so that startup fails fast.
func loadTemplates() map[string]*template.Template {
	layout := template.Must(template.ParseFS(templateFiles, "templates/layout.html"))

	pages := []string{"index.html", "setup.html"}
	result := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		t := template.Must(layout.Clone())
		template.Must(t.ParseFS(templateFiles, "templates/"+page))
		result[page] = t
	}

	return result
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := s.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.logger.Error("template render failed", "template", name, "error", err)
	}
}

type IndexData struct {
	Turns    []TurnView
	Prompts  []string
	Degraded bool
}

type TurnView struct {
	User     bool
	Notice   bool
	Content  string
	Sections []SectionView
}

type SectionView struct {
	ID    string
	Title string
	Body  template.HTML
}

type SetupData struct {
	Error string
}

// turnViews parses every generation turn afresh; nothing parsed is kept.
func (s *Server) turnViews(turns []persistence.Turn) []TurnView {
	views := make([]TurnView, 0, len(turns))
	for i, turn := range turns {
		view := TurnView{Content: turn.Content}
		switch {
		case turn.Role == persistence.RoleUser:
			view.User = true
		case turn.Kind == persistence.KindGeneration:
			for j, sec := range sections.Parse(turn.Content) {
				view.Sections = append(view.Sections, SectionView{
					ID:    fmt.Sprintf("copy-%d-%d", i, j),
					Title: sec.Title,
					Body:  s.markdown(sec.Body),
				})
			}
		default:
			view.Notice = true
		}
		views = append(views, view)
	}
	return views
}

// markdown renders a section body. Raw HTML in the body is dropped, so model
// output cannot inject markup into the page.
func (s *Server) markdown(body string) template.HTML {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(buf.String())
}

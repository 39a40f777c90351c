// Package web serves the single-page copywriting UI.
package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/yuin/goldmark"

	"github.com/sealor/ai-copywriter/pkg/chat"
	"github.com/sealor/ai-copywriter/pkg/persistence"
)

// ConnectFunc builds a generator from an API key captured by the setup page.
type ConnectFunc func(apiKey string) (chat.Generator, error)

// Server owns the process's only chat session. Requests are serialized on
// mu, matching the store's single-writer assumption.
type Server struct {
	mu      sync.Mutex
	store   *persistence.Store
	connect ConnectFunc
	session *chat.Session

	logger    *slog.Logger
	templates map[string]*template.Template
	md        goldmark.Markdown
}

type Option func(*Server)

// WithGenerator skips the setup page when a credential is already known.
func WithGenerator(gen chat.Generator) Option {
	return func(s *Server) {
		s.session = chat.NewSession(s.store, gen, s.logger)
	}
}

func NewServer(store *persistence.Store, connect ConnectFunc, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		store:     store,
		connect:   connect,
		logger:    logger,
		templates: loadTemplates(),
		md:        goldmark.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /prompt", s.handlePrompt)
	mux.HandleFunc("POST /history/select", s.handleSelect)
	mux.HandleFunc("POST /clear", s.handleClear)
	mux.HandleFunc("GET /setup", s.handleSetupForm)
	mux.HandleFunc("POST /setup", s.handleSetup)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	body := map[string]any{
		"ok":         true,
		"configured": s.session != nil,
		"degraded":   s.store.Degraded(),
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		http.Redirect(w, r, "/setup", http.StatusSeeOther)
		return
	}

	s.render(w, http.StatusOK, "index.html", IndexData{
		Turns:    s.turnViews(s.session.History()),
		Prompts:  s.session.Prompts(),
		Degraded: s.session.Degraded(),
	})
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		http.Redirect(w, r, "/setup", http.StatusSeeOther)
		return
	}

	// The generation call blocks this request until the reply is complete.
	if _, err := s.session.Submit(r.Context(), r.FormValue("prompt")); err != nil && !errors.Is(err, chat.ErrEmptyPrompt) {
		s.logger.Error("submit failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.session.Select(r.FormValue("prompt"))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.session != nil {
		err = s.session.Clear()
	} else {
		err = s.store.Clear()
	}
	if err != nil {
		http.Error(w, "could not clear history", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSetupForm(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "setup.html", SetupData{})
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	key := strings.TrimSpace(r.FormValue("api_key"))
	if key == "" {
		s.render(w, http.StatusBadRequest, "setup.html", SetupData{Error: "API key wajib diisi."})
		return
	}

	gen, err := s.connect(key)
	if err != nil {
		s.logger.Error("connect failed", "error", err)
		s.render(w, http.StatusBadRequest, "setup.html", SetupData{Error: "API key tidak dapat digunakan."})
		return
	}

	s.session = chat.NewSession(s.store, gen, s.logger)
	s.logger.Info("generation client configured")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

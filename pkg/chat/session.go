// Package chat runs one conversation: it gates prompts through the
// classifier, calls the generator and records every turn in the store.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sealor/ai-copywriter/pkg/classifier"
	"github.com/sealor/ai-copywriter/pkg/config"
	"github.com/sealor/ai-copywriter/pkg/persistence"
)

// ErrEmptyPrompt is returned by Submit for blank input.
var ErrEmptyPrompt = errors.New("empty prompt")

const (
	RejectionMessage = "Maaf, saya hanya dapat membantu membuat konten pemasaran untuk produk, jasa, atau bisnis. " +
		"Silakan tulis deskripsi singkat, misalnya \"jasa renovasi rumah\" atau \"produk skincare\"."
	FailureMessage = "Maaf, layanan penulisan konten sedang tidak dapat dihubungi. Silakan coba lagi beberapa saat lagi."
)

// Generator produces the raw marketing copy for an accepted prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Session is the single conversation of a running process. It is not safe
// for concurrent use; callers serialize access.
type Session struct {
	store  *persistence.Store
	gen    Generator
	logger *slog.Logger
}

func NewSession(store *persistence.Store, gen Generator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, gen: gen, logger: logger}
}

// Submit records text as a user turn and appends the assistant reply. The
// returned turn is that reply. Storage and generation failures do not fail
// the call: the former are logged and the session continues in memory, the
// latter become a failure notice turn.
func (s *Session) Submit(ctx context.Context, text string) (persistence.Turn, error) {
	if strings.TrimSpace(text) == "" {
		return persistence.Turn{}, ErrEmptyPrompt
	}

	log := s.logger.With("request_id", newRequestID())

	s.append(log, persistence.UserTurn(text))
	if _, err := s.store.RecordPromptIfNew(text); err != nil {
		s.storageFailed(log, "record prompt", err)
	}

	verdict := classifier.Classify(text)
	if !verdict.Accepted {
		log.Info("prompt rejected", "reason", verdict.Reason)
		return s.append(log, persistence.AssistantTurn(persistence.KindValidationRejection, RejectionMessage)), nil
	}

	start := time.Now()
	reply, err := s.gen.Generate(ctx, text)
	if err != nil {
		log.Error("generation failed", "error", err, "elapsed", time.Since(start))
		return s.append(log, persistence.AssistantTurn(persistence.KindGenerationFailure, FailureMessage)), nil
	}
	log.Info("generation complete", "elapsed", time.Since(start), "reply_len", len(reply))
	log.Log(ctx, config.LevelTrace, "generation payload", "prompt", text, "reply", reply)

	return s.append(log, persistence.AssistantTurn(persistence.KindGeneration, reply)), nil
}

// History returns the active log, oldest first.
func (s *Session) History() []persistence.Turn {
	return s.store.Turns()
}

// Prompts returns the distinct prior prompts, most recent first.
func (s *Session) Prompts() []string {
	return s.store.Prompts()
}

// Select rewinds the active log to prompt's first submission.
func (s *Session) Select(prompt string) []persistence.Turn {
	turns, err := s.store.LoadPrefixForPrompt(prompt)
	if err != nil {
		s.storageFailed(s.logger, "load prefix", err)
	}
	return turns
}

func (s *Session) Clear() error {
	if err := s.store.Clear(); err != nil {
		s.storageFailed(s.logger, "clear", err)
		return err
	}
	s.logger.Info("history cleared")
	return nil
}

// Degraded reports whether history is no longer being written to disk.
func (s *Session) Degraded() bool {
	return s.store.Degraded()
}

func (s *Session) append(log *slog.Logger, turn persistence.Turn) persistence.Turn {
	if err := s.store.Append(turn); err != nil {
		s.storageFailed(log, "append turn", err)
	}
	return turn
}

func (s *Session) storageFailed(log *slog.Logger, op string, err error) {
	log.Warn("history storage failed, continuing in memory", "op", op, "error", err)
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

package persistence

import (
	"errors"
	"path/filepath"
	"slices"
)

// Store keeps the session log and the prompt history index in memory and
// mirrors both into a history directory. It assumes a single writer; the
// backing files must not be shared between processes.
//
// Every mutation is applied in memory first. When a write fails the store
// becomes degraded and stops touching the disk for the rest of its lifetime.
type Store struct {
	dir        string
	maxPrompts int
	degraded   bool

	turns   []Turn
	prompts []string
}

type Option func(*Store)

// WithMaxPrompts caps the prompt history index. Zero means unbounded.
func WithMaxPrompts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxPrompts = n
		}
	}
}

// Open loads the message log and prompt history from dir. Missing files are
// treated as empty collections.
//
// When a file cannot be read Open returns the error together with an empty,
// degraded store. That store still knows dir, so Clear removes the
// unreadable files.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{dir: dir}
	for _, opt := range opts {
		opt(s)
	}

	if err := loadYAML(s.messagesPath(), &s.turns); err != nil {
		s.turns = nil
		return s, s.fail(err)
	}
	if err := loadYAML(s.promptsPath(), &s.prompts); err != nil {
		s.turns, s.prompts = nil, nil
		return s, s.fail(err)
	}
	s.capPrompts()

	return s, nil
}

// Degraded reports whether the store has fallen back to memory only.
func (s *Store) Degraded() bool {
	return s.degraded
}

func (s *Store) Turns() []Turn {
	return slices.Clone(s.turns)
}

func (s *Store) Prompts() []string {
	return slices.Clone(s.prompts)
}

// Append adds turn to the log and rewrites the message file. The turn stays
// visible in memory even when the write fails.
func (s *Store) Append(turn Turn) error {
	s.turns = append(s.turns, turn)
	return s.persist(s.messagesPath(), s.turns)
}

// RecordPromptIfNew puts prompt at the front of the history index unless it
// is already present. It reports whether the prompt was inserted.
func (s *Store) RecordPromptIfNew(prompt string) (bool, error) {
	if slices.Contains(s.prompts, prompt) {
		return false, nil
	}

	s.prompts = slices.Insert(s.prompts, 0, prompt)
	s.capPrompts()
	return true, s.persist(s.promptsPath(), s.prompts)
}

// LoadPrefixForPrompt rewinds the active log to the first user turn whose
// content equals prompt, keeping that turn. The persisted log is the source
// unless the store is degraded or the read fails, in which case the
// in-memory log is rewound and the read error is returned with the prefix.
// Without a match the full log is returned. The files are left alone; the
// next Append overwrites them.
func (s *Store) LoadPrefixForPrompt(prompt string) ([]Turn, error) {
	full := s.turns
	var loadErr error
	if !s.degraded {
		var persisted []Turn
		if err := loadYAML(s.messagesPath(), &persisted); err != nil {
			loadErr = s.fail(err)
		} else {
			full = persisted
		}
	}

	end := len(full)
	for i, turn := range full {
		if turn.Role == RoleUser && turn.Content == prompt {
			end = i + 1
			break
		}
	}

	s.turns = slices.Clone(full[:end])
	return s.Turns(), loadErr
}

// Clear empties the log and the index and removes both files, so a fresh
// Open observes no history at all. A degraded store still removes them.
func (s *Store) Clear() error {
	s.turns = nil
	s.prompts = nil

	err := errors.Join(removeFile(s.messagesPath()), removeFile(s.promptsPath()))
	if err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *Store) persist(path string, v any) error {
	if s.degraded {
		return nil
	}
	if err := saveYAML(path, v); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *Store) fail(err error) error {
	s.degraded = true
	return err
}

func (s *Store) capPrompts() {
	if s.maxPrompts > 0 && len(s.prompts) > s.maxPrompts {
		s.prompts = s.prompts[:s.maxPrompts]
	}
}

func (s *Store) messagesPath() string {
	return filepath.Join(s.dir, MessagesFile)
}

func (s *Store) promptsPath() string {
	return filepath.Join(s.dir, PromptsFile)
}

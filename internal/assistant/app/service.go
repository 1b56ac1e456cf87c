package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/dohsarpay/internal/assistant/domain"
)

var (
	// ErrNotConfigured means the completion credential is absent. It is
	// raised before any turn is recorded and before any network I/O.
	ErrNotConfigured = errors.New("assistant is not configured")
	// ErrBusy rejects a second send while a reply for the same session is
	// still streaming.
	ErrBusy         = errors.New("a reply is already in progress")
	ErrEmptyMessage = errors.New("message is empty")
	// ErrCompletionFailed wraps errors from the completion backend.
	ErrCompletionFailed = errors.New("completion failed")
)

// Service owns the per-session transcripts and forwards user messages to
// the Completer. On success exactly one model turn is appended; on
// failure the user's turn stays recorded, no model turn is added and no
// retry is attempted.
type Service struct {
	completer Completer

	mu          sync.Mutex
	transcripts map[string][]domain.Turn
	inFlight    map[string]bool
}

// NewService accepts a nil completer; every Send then fails with
// ErrNotConfigured while History keeps working, so the storefront stays
// usable without the credential.
func NewService(completer Completer) *Service {
	return &Service{
		completer:   completer,
		transcripts: make(map[string][]domain.Turn),
		inFlight:    make(map[string]bool),
	}
}

// History returns the session transcript, seeding the welcome turn on
// first access.
func (s *Service) History(sessionID string) []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.ensureTranscript(sessionID)
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out
}

// Send records the user's turn, streams the completion through onChunk
// and appends the assembled reply as a single model turn. onChunk may be
// nil when the caller only wants the final turn.
func (s *Service) Send(ctx context.Context, sessionID, text string, onChunk func(string) error) (domain.Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Turn{}, ErrEmptyMessage
	}
	if s.completer == nil {
		return domain.Turn{}, ErrNotConfigured
	}

	s.mu.Lock()
	if s.inFlight[sessionID] {
		s.mu.Unlock()
		return domain.Turn{}, ErrBusy
	}
	s.inFlight[sessionID] = true

	s.ensureTranscript(sessionID)
	userTurn := domain.Turn{ID: uuid.NewString(), Role: domain.RoleUser, Text: text}
	s.transcripts[sessionID] = append(s.transcripts[sessionID], userTurn)

	history := make([]domain.Turn, len(s.transcripts[sessionID]))
	copy(history, s.transcripts[sessionID])
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionID)
		s.mu.Unlock()
	}()

	var reply strings.Builder
	err := s.completer.Stream(ctx, history, func(chunk string) error {
		reply.WriteString(chunk)
		if onChunk != nil {
			return onChunk(chunk)
		}
		return nil
	})
	if err != nil {
		return domain.Turn{}, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	modelTurn := domain.Turn{ID: uuid.NewString(), Role: domain.RoleModel, Text: reply.String()}

	s.mu.Lock()
	s.transcripts[sessionID] = append(s.transcripts[sessionID], modelTurn)
	s.mu.Unlock()

	return modelTurn, nil
}

// ensureTranscript must be called with the mutex held.
func (s *Service) ensureTranscript(sessionID string) []domain.Turn {
	if _, ok := s.transcripts[sessionID]; !ok {
		s.transcripts[sessionID] = []domain.Turn{{
			ID:   uuid.NewString(),
			Role: domain.RoleModel,
			Text: domain.WelcomeText,
		}}
	}
	return s.transcripts[sessionID]
}

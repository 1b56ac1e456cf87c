package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/dwikikusuma/dohsarpay/internal/assistant/domain"
)

type fakeCompleter struct {
	chunks []string
	err    error

	mu      sync.Mutex
	started chan struct{}
	release chan struct{}
	history []domain.Turn
}

func (f *fakeCompleter) Stream(ctx context.Context, history []domain.Turn, onChunk func(string) error) error {
	f.mu.Lock()
	f.history = history
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return f.err
	}
	for _, c := range f.chunks {
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return nil
}

func TestHistorySeedsWelcomeTurn(t *testing.T) {
	svc := NewService(&fakeCompleter{})

	turns := svc.History("s1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 seeded turn, got %d", len(turns))
	}
	if turns[0].Role != domain.RoleModel || turns[0].Text != domain.WelcomeText {
		t.Fatalf("unexpected welcome turn: %+v", turns[0])
	}
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("streams chunks and appends one model turn", func(t *testing.T) {
		completer := &fakeCompleter{chunks: []string{"Hel", "lo!"}}
		svc := NewService(completer)

		var got strings.Builder
		turn, err := svc.Send(ctx, "s1", "hi", func(chunk string) error {
			got.WriteString(chunk)
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if turn.Text != "Hello!" || got.String() != "Hello!" {
			t.Fatalf("chunks lost: turn=%q streamed=%q", turn.Text, got.String())
		}

		turns := svc.History("s1")
		// welcome + user + model
		if len(turns) != 3 {
			t.Fatalf("expected 3 turns, got %d", len(turns))
		}
		if turns[1].Role != domain.RoleUser || turns[1].Text != "hi" {
			t.Fatalf("user turn wrong: %+v", turns[1])
		}
		if turns[2].Role != domain.RoleModel || turns[2].Text != "Hello!" {
			t.Fatalf("model turn wrong: %+v", turns[2])
		}
	})

	t.Run("completer sees the full transcript ending with the new turn", func(t *testing.T) {
		completer := &fakeCompleter{chunks: []string{"ok"}}
		svc := NewService(completer)

		if _, err := svc.Send(ctx, "s1", "first", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Send(ctx, "s1", "second", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		h := completer.history
		if len(h) != 4 {
			t.Fatalf("expected 4 turns of history, got %d", len(h))
		}
		if h[len(h)-1].Text != "second" || h[len(h)-1].Role != domain.RoleUser {
			t.Fatalf("history must end with the new user turn: %+v", h[len(h)-1])
		}
	})

	t.Run("failure keeps the user turn, adds no model turn", func(t *testing.T) {
		completer := &fakeCompleter{err: errors.New("service down")}
		svc := NewService(completer)

		if _, err := svc.Send(ctx, "s1", "hi", nil); err == nil {
			t.Fatal("expected an error")
		}

		turns := svc.History("s1")
		if len(turns) != 2 {
			t.Fatalf("expected welcome + user turn only, got %d", len(turns))
		}
		if turns[1].Role != domain.RoleUser {
			t.Fatalf("user turn missing: %+v", turns)
		}
	})

	t.Run("blank message -> ErrEmptyMessage", func(t *testing.T) {
		svc := NewService(&fakeCompleter{})
		if _, err := svc.Send(ctx, "s1", "   ", nil); err != ErrEmptyMessage {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})
}

func TestSendUnconfigured(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Send(context.Background(), "s1", "hi", nil)
	if err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	// Fails fast: nothing at all is recorded, not even the user's turn.
	turns := svc.History("s1")
	if len(turns) != 1 {
		t.Fatalf("expected only the welcome turn, got %+v", turns)
	}
}

func TestSendWhileBusy(t *testing.T) {
	completer := &fakeCompleter{
		chunks:  []string{"done"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(completer)

	errs := make(chan error, 1)
	go func() {
		_, err := svc.Send(context.Background(), "s1", "slow one", nil)
		errs <- err
	}()

	<-completer.started
	if _, err := svc.Send(context.Background(), "s1", "too soon", nil); err != ErrBusy {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(completer.release)
	if err := <-errs; err != nil {
		t.Fatalf("first send failed: %v", err)
	}

	// Guard is per conversation and released after completion.
	completer.started = nil
	completer.release = nil
	if _, err := svc.Send(context.Background(), "s1", "again", nil); err != nil {
		t.Fatalf("guard not released: %v", err)
	}
}

package app

import (
	"context"

	"github.com/dwikikusuma/dohsarpay/internal/assistant/domain"
)

// Completer is the external text-completion service: given the ordered
// role-tagged transcript (newest user turn last) it streams back text
// fragments whose concatenation is the full reply. No determinism,
// latency bound or idempotence is assumed of it.
type Completer interface {
	Stream(ctx context.Context, history []domain.Turn, onChunk func(text string) error) error
}

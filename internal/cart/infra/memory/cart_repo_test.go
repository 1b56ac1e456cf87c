package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/dohsarpay/internal/cart/domain"
)

func TestUpsertReplacesExistingLine(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "s1", domain.Line{BookID: 1, Title: "T", Price: 100, Quantity: 1}))
	require.NoError(t, repo.Upsert(ctx, "s1", domain.Line{BookID: 1, Title: "T", Price: 100, Quantity: 2}))

	cart, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestGetReturnsACopy(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "s1", domain.Line{BookID: 1, Quantity: 1}))

	cart, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	cart.Lines[0].Quantity = 99

	again, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Lines[0].Quantity)
}

func TestClear(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "s1", domain.Line{BookID: 1, Quantity: 1}))
	require.NoError(t, repo.Clear(ctx, "s1"))

	cart, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestConcurrentUpsertAcrossSessions(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()

	const sessions = 50
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < sessions; i++ {
		sessionID := string(rune('a' + i%26))
		g.Go(func() error {
			return repo.Upsert(ctx, sessionID, domain.Line{BookID: 1, Quantity: 1})
		})
	}
	require.NoError(t, g.Wait())

	cart, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
}

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisAdapter "github.com/nfakit/nfakit/internal/adapters/redis"
	"github.com/nfakit/nfakit/pkg/automaton"
	"github.com/nfakit/nfakit/pkg/ports"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redisAdapter.NewFromClient(newTestClient(t))
	ports.RunStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redisAdapter.NewFromClient(client, redisAdapter.WithTTL(1*time.Second))
	ctx := context.Background()

	n, err := automaton.New([]automaton.State{1, 2}, []automaton.Symbol{'a'}, 1, []automaton.State{2})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "short-lived", n))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "short-lived")

	// Fast forward past the TTL; the key expires in miniredis.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, automaton.ErrNotFound)

	// List prunes by wall-clock score, so wait out the TTL for real too.
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redisAdapter.NewFromClient(client, redisAdapter.WithPrefix("custom:nfa:"))
	ctx := context.Background()

	n, err := automaton.New([]automaton.State{1}, []automaton.Symbol{'a'}, 1, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "named", n))

	assert.True(t, mr.Exists("custom:nfa:named"))
	assert.True(t, mr.Exists("custom:nfa:index"))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "named")
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/menshealthfinder/api/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBlacklist(t *testing.T) (*TokenBlacklist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewTokenBlacklist(client), mr
}

func TestTokenBlacklist_AddAndCheck(t *testing.T) {
	blacklist, _ := setupBlacklist(t)
	ctx := context.Background()

	require.NoError(t, blacklist.Add(ctx, "revoked.jwt.token", time.Hour))

	revoked, err := blacklist.IsBlacklisted(ctx, "revoked.jwt.token")
	require.NoError(t, err)
	assert.True(t, revoked)

	// A token that was never revoked stays valid
	other, err := blacklist.IsBlacklisted(ctx, "still.valid.token")
	require.NoError(t, err)
	assert.False(t, other)
}

func TestTokenBlacklist_EntryExpires(t *testing.T) {
	blacklist, mr := setupBlacklist(t)
	ctx := context.Background()

	require.NoError(t, blacklist.Add(ctx, "expiring.jwt.token", time.Second))

	revoked, err := blacklist.IsBlacklisted(ctx, "expiring.jwt.token")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Second)

	revoked, err = blacklist.IsBlacklisted(ctx, "expiring.jwt.token")
	require.NoError(t, err)
	assert.False(t, revoked, "entry should drop once the JWT itself has expired")
}

func TestTokenBlacklist_StoresHashNotToken(t *testing.T) {
	blacklist, mr := setupBlacklist(t)
	ctx := context.Background()

	token := "secret.jwt.token"
	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	// The raw token never touches Redis
	assert.False(t, mr.Exists(blacklistKeyPrefix+token))
	assert.True(t, mr.Exists(blacklistKeyPrefix+hashToken(token)))
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, hashToken("a.b.c"), hashToken("a.b.c"))
	assert.NotEqual(t, hashToken("a.b.c"), hashToken("a.b.d"))
	assert.Len(t, hashToken("a.b.c"), 64)
}

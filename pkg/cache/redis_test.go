package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := &Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "clinics:search:austin", `{"total":3}`, time.Hour))

	val, err := client.Get(ctx, "clinics:search:austin")
	require.NoError(t, err)
	assert.Equal(t, `{"total":3}`, val)
}

func TestClient_Get_Miss(t *testing.T) {
	client, _ := setupTestRedis(t)

	_, err := client.Get(context.Background(), "clinics:search:nowhere")
	require.Error(t, err)
	assert.True(t, IsNil(err))
}

func TestClient_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	_ = client.Set(ctx, "session:abc", "state", time.Hour)
	_ = client.Set(ctx, "session:def", "state", time.Hour)

	require.NoError(t, client.Delete(ctx, "session:abc"))

	_, err := client.Get(ctx, "session:abc")
	assert.True(t, IsNil(err))

	val, err := client.Get(ctx, "session:def")
	require.NoError(t, err)
	assert.Equal(t, "state", val)
}

func TestClient_DeletePattern(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	_ = client.Set(ctx, "clinics:search:austin", "a", time.Hour)
	_ = client.Set(ctx, "clinics:search:dallas", "b", time.Hour)
	_ = client.Set(ctx, "clinics:slug:apex-mens-health-austin", "c", time.Hour)
	_ = client.Set(ctx, "session:abc", "d", time.Hour)

	require.NoError(t, client.DeletePattern(ctx, "clinics:*"))

	for _, key := range []string{"clinics:search:austin", "clinics:search:dallas", "clinics:slug:apex-mens-health-austin"} {
		_, err := client.Get(ctx, key)
		assert.True(t, IsNil(err), "expected %s gone", key)
	}

	// Sessions are untouched by a clinic cache flush
	val, err := client.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.Equal(t, "d", val)
}

func TestClient_Exists(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	exists, err := client.Exists(ctx, "jwt:blacklist:deadbeef")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "jwt:blacklist:deadbeef", "revoked", time.Hour)

	exists, err = client.Exists(ctx, "jwt:blacklist:deadbeef")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_SetOperations(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.SAdd(ctx, "sessions:active", "s1", "s2"))

	members, err := client.SMembers(ctx, "sessions:active")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s1", "s2"}, members)

	require.NoError(t, client.SRem(ctx, "sessions:active", "s1"))

	members, err = client.SMembers(ctx, "sessions:active")
	require.NoError(t, err)
	assert.Equal(t, []string{"s2"}, members)
}

func TestClient_ExpiryHonored(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	_ = client.Set(ctx, "session:short", "state", time.Second)

	mr.FastForward(2 * time.Second)

	_, err := client.Get(ctx, "session:short")
	assert.True(t, IsNil(err))
}

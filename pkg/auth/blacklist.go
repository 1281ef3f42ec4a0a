package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/menshealthfinder/api/pkg/cache"
)

const blacklistKeyPrefix = "jwt:blacklist:"

// TokenBlacklist tracks revoked operator tokens in Redis. Entries expire on
// their own once the underlying JWT would have expired anyway.
type TokenBlacklist struct {
	cache *cache.Client
}

// NewTokenBlacklist creates a new token blacklist
func NewTokenBlacklist(cache *cache.Client) *TokenBlacklist {
	return &TokenBlacklist{
		cache: cache,
	}
}

// Add revokes a token until the given expiration. Only a hash of the token
// is stored, never the raw JWT.
func (b *TokenBlacklist) Add(ctx context.Context, token string, expiration time.Duration) error {
	return b.cache.Set(ctx, blacklistKeyPrefix+hashToken(token), "revoked", expiration)
}

// IsBlacklisted checks if a token has been revoked
func (b *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	return b.cache.Exists(ctx, blacklistKeyPrefix+hashToken(token))
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

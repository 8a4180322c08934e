package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const RefreshTokenTTL = 30 * 24 * time.Hour

var ErrRefreshTokenInvalid = errors.New("refresh token invalid or expired")

// TokenStore keeps opaque refresh tokens in Redis, keyed by the token value
// with the owning user id as payload. A nil *TokenStore disables the refresh
// flow entirely.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	if client == nil {
		return nil
	}
	return &TokenStore{client: client}
}

func (s *TokenStore) Enabled() bool {
	return s != nil
}

// Issue creates and stores a fresh refresh token for the user.
func (s *TokenStore) Issue(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	key := refreshKey(token)
	if err := s.client.Set(ctx, key, userID, RefreshTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store refresh token: %w", err)
	}
	return token, nil
}

// Redeem resolves a refresh token to its user id and deletes it, so every
// refresh rotates the token.
func (s *TokenStore) Redeem(ctx context.Context, token string) (uint, error) {
	key := refreshKey(token)
	userID, err := s.client.GetDel(ctx, key).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrRefreshTokenInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("redeem refresh token: %w", err)
	}
	return uint(userID), nil
}

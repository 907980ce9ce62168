package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists issued refresh tokens (hashed at rest).
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, before time.Time) error
}

package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByOAuth(ctx context.Context, provider string, providerID string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	UpdateLastSignedIn(ctx context.Context, id string, at time.Time) error
}

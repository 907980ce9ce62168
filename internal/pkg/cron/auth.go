package cron

import (
	"context"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/auth"
)

// AuthJobs contains auth-related cron jobs
type AuthJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
}

// NewAuthJobs creates auth cron jobs
func NewAuthJobs(refreshTokenRepo auth.RefreshTokenRepository) *AuthJobs {
	return &AuthJobs{refreshTokenRepo: refreshTokenRepo}
}

// RegisterJobs registers all auth-related cron jobs
func (j *AuthJobs) RegisterJobs(scheduler *Scheduler) {
	// Purge expired refresh tokens every hour
	scheduler.AddJob(
		"cleanup_expired_refresh_tokens",
		1*time.Hour,
		j.CleanupExpiredRefreshTokens,
	)
}

// CleanupExpiredRefreshTokens deletes refresh tokens past their expiry
func (j *AuthJobs) CleanupExpiredRefreshTokens(ctx context.Context) error {
	return j.refreshTokenRepo.DeleteExpired(ctx, time.Now())
}

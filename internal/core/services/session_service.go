package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/core/domain"
	"rbx-staffhub/internal/pkg/token"
)

// SessionService owns the server-side session store. Clients hold an opaque
// token; the store keeps only its hash plus a sliding expiry window.
type SessionService struct {
	sessionRepo repositories.SessionRepository
	accountRepo repositories.AccountRepository
	ttl         time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo repositories.SessionRepository,
	accountRepo repositories.AccountRepository,
	ttlDays int,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		accountRepo: accountRepo,
		ttl:         time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// TTL returns the configured sliding session lifetime
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create opens a new session for an account and returns the opaque token
func (s *SessionService) Create(ctx context.Context, accountID uint) (string, error) {
	opaque := uuid.NewString()
	now := time.Now()

	session := &models.Session{
		TokenHash:  token.Hash(opaque),
		AccountID:  accountID,
		ExpiresAt:  now.Add(s.ttl),
		LastSeenAt: now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}

	return opaque, nil
}

// Validate resolves an opaque token to its session and account, sliding the
// expiry window forward. Expired or unknown tokens fail ErrSessionInvalid.
func (s *SessionService) Validate(ctx context.Context, opaque string) (*models.Session, *models.Account, error) {
	session, err := s.sessionRepo.GetByTokenHash(ctx, token.Hash(opaque))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrSessionInvalid
		}
		return nil, nil, err
	}

	now := time.Now()
	if session.IsExpired() {
		// Lazy cleanup; the sweeper catches whatever is never revisited.
		_ = s.sessionRepo.DeleteByTokenHash(ctx, session.TokenHash)
		return nil, nil, domain.ErrSessionExpired
	}

	if err := s.sessionRepo.Touch(ctx, session.ID, now.Add(s.ttl), now); err != nil {
		return nil, nil, err
	}
	session.ExpiresAt = now.Add(s.ttl)
	session.LastSeenAt = now

	account, err := s.accountRepo.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrSessionInvalid
		}
		return nil, nil, err
	}

	return session, account, nil
}

// Destroy removes a session (logout). Unknown tokens are a no-op.
func (s *SessionService) Destroy(ctx context.Context, opaque string) error {
	return s.sessionRepo.DeleteByTokenHash(ctx, token.Hash(opaque))
}

// PurgeExpired removes all sessions past their expiry
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, time.Now())
}

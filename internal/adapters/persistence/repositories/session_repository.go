package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
)

// sessionRepository implements SessionRepository interface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create creates a new session row
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByTokenHash looks up a session by its token hash
func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Touch slides the expiry window forward on activity
func (r *sessionRepository) Touch(ctx context.Context, id uint, expiresAt, lastSeenAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"expires_at":   expiresAt,
			"last_seen_at": lastSeenAt,
		}).Error
}

// DeleteByTokenHash destroys a session (logout)
func (r *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&models.Session{}).Error
}

// DeleteExpired removes sessions past their expiry, returning rows affected
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}

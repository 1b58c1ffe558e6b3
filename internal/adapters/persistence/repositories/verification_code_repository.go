package repositories

import (
	"context"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
)

// verificationCodeRepository implements VerificationCodeRepository interface
type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository creates a new verification code repository
func NewVerificationCodeRepository(db *gorm.DB) VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

// Create creates a new verification code row
func (r *verificationCodeRepository) Create(ctx context.Context, code *models.VerificationCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// GetLatestUnused gets the most recently created unused code for a username.
// Username matching is case-insensitive; latest by creation wins.
func (r *verificationCodeRepository) GetLatestUnused(ctx context.Context, username string) (*models.VerificationCode, error) {
	var code models.VerificationCode
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?) AND used = ?", username, false).
		Order("created_at DESC").
		Order("id DESC").
		First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// MarkUsed flips a code to used (one-time use; rows are never deleted)
func (r *verificationCodeRepository) MarkUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.VerificationCode{}).
		Where("id = ?", id).
		Update("used", true).Error
}

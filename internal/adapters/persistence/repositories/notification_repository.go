package repositories

import (
	"context"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
)

// notificationRepository implements NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// GetByID gets a notification by ID
func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByAccount lists an account's notifications, newest first
func (r *notificationRepository) ListByAccount(ctx context.Context, accountID uint) ([]*models.Notification, error) {
	var ns []*models.Notification
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

// MarkRead flips a single notification to read
func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

// MarkAllRead flips every unread notification for an account, returning rows affected
func (r *notificationRepository) MarkAllRead(ctx context.Context, accountID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("account_id = ? AND `read` = ?", accountID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

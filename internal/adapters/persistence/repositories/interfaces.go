package repositories

import (
	"context"
	"time"

	"rbx-staffhub/internal/adapters/persistence/models"
)

// AccountRepository defines account persistence operations
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByRobloxUserID(ctx context.Context, robloxUserID int64) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}

// VerificationCodeRepository defines verification code persistence operations
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *models.VerificationCode) error
	// GetLatestUnused returns the most recently created unused code for a
	// username, or gorm.ErrRecordNotFound if none exists.
	GetLatestUnused(ctx context.Context, username string) (*models.VerificationCode, error)
	MarkUsed(ctx context.Context, id uint) error
}

// SessionRepository defines session persistence operations
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	// Touch slides the expiry window forward on activity
	Touch(ctx context.Context, id uint, expiresAt, lastSeenAt time.Time) error
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TransferRequestRepository defines transfer request persistence operations
type TransferRequestRepository interface {
	Create(ctx context.Context, req *models.TransferRequest) error
	GetByID(ctx context.Context, id uint) (*models.TransferRequest, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*models.TransferRequest, error)
	List(ctx context.Context, offset, limit int) ([]*models.TransferRequest, int64, error)
	Update(ctx context.Context, req *models.TransferRequest) error
}

// LoaRequestRepository defines LOA request persistence operations
type LoaRequestRepository interface {
	Create(ctx context.Context, req *models.LoaRequest) error
	GetByID(ctx context.Context, id uint) (*models.LoaRequest, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*models.LoaRequest, error)
	List(ctx context.Context, offset, limit int) ([]*models.LoaRequest, int64, error)
	Update(ctx context.Context, req *models.LoaRequest) error
}

// NotificationRepository defines notification persistence operations
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, accountID uint) (int64, error)
}

package repositories

import (
	"context"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
)

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// GetByID gets an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByRobloxUserID gets an account by external platform user id
func (r *accountRepository) GetByRobloxUserID(ctx context.Context, robloxUserID int64) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("roblox_user_id = ?", robloxUserID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByUsername gets an account by external platform username
func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("roblox_username = ?", username).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Update updates an account
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

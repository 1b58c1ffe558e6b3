package repositories

import (
	"context"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
)

// transferRequestRepository implements TransferRequestRepository interface
type transferRequestRepository struct {
	db *gorm.DB
}

// NewTransferRequestRepository creates a new transfer request repository
func NewTransferRequestRepository(db *gorm.DB) TransferRequestRepository {
	return &transferRequestRepository{db: db}
}

// Create creates a new transfer request
func (r *transferRequestRepository) Create(ctx context.Context, req *models.TransferRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// GetByID gets a transfer request by ID
func (r *transferRequestRepository) GetByID(ctx context.Context, id uint) (*models.TransferRequest, error) {
	var req models.TransferRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByAccount lists an account's own transfer requests, newest first
func (r *transferRequestRepository) ListByAccount(ctx context.Context, accountID uint) ([]*models.TransferRequest, error) {
	var reqs []*models.TransferRequest
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// List lists all transfer requests, newest first. limit <= 0 returns everything.
func (r *transferRequestRepository) List(ctx context.Context, offset, limit int) ([]*models.TransferRequest, int64, error) {
	var reqs []*models.TransferRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.TransferRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

// Update updates a transfer request
func (r *transferRequestRepository) Update(ctx context.Context, req *models.TransferRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

package repositories

import (
	"context"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
)

// loaRequestRepository implements LoaRequestRepository interface
type loaRequestRepository struct {
	db *gorm.DB
}

// NewLoaRequestRepository creates a new LOA request repository
func NewLoaRequestRepository(db *gorm.DB) LoaRequestRepository {
	return &loaRequestRepository{db: db}
}

// Create creates a new LOA request
func (r *loaRequestRepository) Create(ctx context.Context, req *models.LoaRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// GetByID gets a LOA request by ID
func (r *loaRequestRepository) GetByID(ctx context.Context, id uint) (*models.LoaRequest, error) {
	var req models.LoaRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByAccount lists an account's own LOA requests, newest first
func (r *loaRequestRepository) ListByAccount(ctx context.Context, accountID uint) ([]*models.LoaRequest, error) {
	var reqs []*models.LoaRequest
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// List lists all LOA requests, newest first. limit <= 0 returns everything.
func (r *loaRequestRepository) List(ctx context.Context, offset, limit int) ([]*models.LoaRequest, int64, error) {
	var reqs []*models.LoaRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.LoaRequest{}).Count(&total).Error; err != nil {
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

// Update updates a LOA request
func (r *loaRequestRepository) Update(ctx context.Context, req *models.LoaRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/core/domain"
)

// CreateTransferInput represents a transfer request submission
type CreateTransferInput struct {
	RequestedDepartment    string `json:"requested_department"`
	RequestedSubDepartment string `json:"requested_sub_department"`
	Reason                 string `json:"reason,omitempty"`
}

// CreateLoaInput represents a leave-of-absence request submission
type CreateLoaInput struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

// RequestService handles the transfer/LOA request lifecycle:
// Pending -> Approved | Rejected, decided by a privileged reviewer,
// with a notification recorded on every transition.
type RequestService struct {
	transferRepo  repositories.TransferRequestRepository
	loaRepo       repositories.LoaRequestRepository
	notifyService *NotificationService
}

// NewRequestService creates a new request service
func NewRequestService(
	transferRepo repositories.TransferRequestRepository,
	loaRepo repositories.LoaRequestRepository,
	notifyService *NotificationService,
) *RequestService {
	return &RequestService{
		transferRepo:  transferRepo,
		loaRepo:       loaRepo,
		notifyService: notifyService,
	}
}

// CreateTransfer submits a transfer request for the calling account.
// No transfer-legality check is made server-side; requesting the current
// department is allowed.
func (s *RequestService) CreateTransfer(ctx context.Context, account *models.Account, input *CreateTransferInput) (*models.TransferRequest, error) {
	if input.RequestedDepartment == "" || input.RequestedSubDepartment == "" {
		return nil, domain.ErrInvalidInput
	}

	req := &models.TransferRequest{
		AccountID:              account.ID,
		CurrentDepartment:      account.Department,
		CurrentSubDepartment:   account.SubDepartment,
		RequestedDepartment:    input.RequestedDepartment,
		RequestedSubDepartment: input.RequestedSubDepartment,
		Reason:                 input.Reason,
		Status:                 string(domain.StatusPending),
	}

	if err := s.transferRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// CreateLoa submits a leave-of-absence request for the calling account
func (s *RequestService) CreateLoa(ctx context.Context, account *models.Account, input *CreateLoaInput) (*models.LoaRequest, error) {
	if input.StartDate == "" || input.EndDate == "" || input.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", input.StartDate); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", input.EndDate); err != nil {
		return nil, domain.ErrInvalidInput
	}

	req := &models.LoaRequest{
		AccountID: account.ID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
		Status:    string(domain.StatusPending),
	}

	if err := s.loaRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// ListMyTransfers lists the calling account's transfer requests
func (s *RequestService) ListMyTransfers(ctx context.Context, accountID uint) ([]*models.TransferRequest, error) {
	return s.transferRepo.ListByAccount(ctx, accountID)
}

// ListMyLoas lists the calling account's LOA requests
func (s *RequestService) ListMyLoas(ctx context.Context, accountID uint) ([]*models.LoaRequest, error) {
	return s.loaRepo.ListByAccount(ctx, accountID)
}

// ListTransfers lists all transfer requests (admin). limit <= 0 returns everything.
func (s *RequestService) ListTransfers(ctx context.Context, offset, limit int) ([]*models.TransferRequest, int64, error) {
	return s.transferRepo.List(ctx, offset, limit)
}

// ListLoas lists all LOA requests (admin). limit <= 0 returns everything.
func (s *RequestService) ListLoas(ctx context.Context, offset, limit int) ([]*models.LoaRequest, int64, error) {
	return s.loaRepo.List(ctx, offset, limit)
}

// ReviewTransfer applies a reviewer decision to a transfer request.
// Re-reviewing an already-decided request is permitted and re-notifies.
func (s *RequestService) ReviewTransfer(ctx context.Context, id uint, status domain.RequestStatus, reviewerID uint) (*models.TransferRequest, error) {
	if !status.IsDecision() {
		return nil, domain.ErrInvalidStatus
	}

	req, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	now := time.Now()
	req.Status = string(status)
	req.ReviewedAt = &now
	req.ReviewerID = &reviewerID

	if err := s.transferRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.notifyService.NotifyDecision(ctx, req.AccountID, domain.KindTransfer, req.ID, status)

	return req, nil
}

// ReviewLoa applies a reviewer decision to a LOA request
func (s *RequestService) ReviewLoa(ctx context.Context, id uint, status domain.RequestStatus, reviewerID uint) (*models.LoaRequest, error) {
	if !status.IsDecision() {
		return nil, domain.ErrInvalidStatus
	}

	req, err := s.loaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	now := time.Now()
	req.Status = string(status)
	req.ReviewedAt = &now
	req.ReviewerID = &reviewerID

	if err := s.loaRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.notifyService.NotifyDecision(ctx, req.AccountID, domain.KindLoa, req.ID, status)

	return req, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/core/domain"
)

// NotificationService is the append-only sink fed by request status
// transitions and polled by the owning account.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// NotifyDecision records exactly one notification for a request status
// transition. The type tag combines request kind and new status,
// e.g. transfer_approved.
func (s *NotificationService) NotifyDecision(ctx context.Context, accountID uint, kind domain.RequestKind, requestID uint, status domain.RequestStatus) error {
	tag := fmt.Sprintf("%s_%s", kind, strings.ToLower(string(status)))

	kindLabel := "transfer request"
	if kind == domain.KindLoa {
		kindLabel = "leave of absence request"
	}

	n := &models.Notification{
		AccountID:   accountID,
		Message:     fmt.Sprintf("Your %s #%d has been %s.", kindLabel, requestID, strings.ToLower(string(status))),
		Type:        tag,
		RequestID:   requestID,
		RequestKind: string(kind),
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("⚠️ failed to record %s notification for account %d: %v", tag, accountID, err)
		return err
	}

	return nil
}

// ListByAccount returns an account's notifications, newest first
func (s *NotificationService) ListByAccount(ctx context.Context, accountID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListByAccount(ctx, accountID)
}

// MarkRead flips one notification to read. Only the owner may do so;
// someone else's notification reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, accountID, notificationID uint) error {
	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if n.AccountID != accountID {
		return domain.ErrNotFound
	}

	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// MarkAllRead flips every unread notification for the calling account
func (s *NotificationService) MarkAllRead(ctx context.Context, accountID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, accountID)
}

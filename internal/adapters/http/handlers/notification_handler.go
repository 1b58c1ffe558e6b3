package handlers

import (
	"errors"
	"strconv"

	"rbx-staffhub/internal/adapters/http/middleware"
	"rbx-staffhub/internal/core/domain"
	"rbx-staffhub/internal/core/services"
	"rbx-staffhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notifyService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifyService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifyService: notifyService}
}

// List lists the calling account's notifications
// @Summary My notifications
// @Description Lists the calling account's notifications, newest first
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.LocalAccountID).(uint)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	ns, err := h.notifyService.ListByAccount(c.UserContext(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list notifications")
	}

	return response.Success(c, "Notifications retrieved", ns)
}

// MarkRead marks one notification as read
// @Summary Mark notification read
// @Description Marks a single owned notification as read
// @Tags Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.LocalAccountID).(uint)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid notification id")
	}

	if err := h.notifyService.MarkRead(c.UserContext(), accountID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Notification not found")
		}
		return response.InternalServerError(c, "Failed to mark notification read")
	}

	return response.Success(c, "Notification marked read", nil)
}

// MarkAllRead marks every unread notification for the caller as read
// @Summary Mark all notifications read
// @Description Marks all of the calling account's unread notifications as read
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /notifications/mark-all-read [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.LocalAccountID).(uint)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	updated, err := h.notifyService.MarkAllRead(c.UserContext(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to mark notifications read")
	}

	return response.Success(c, "Notifications marked read", fiber.Map{
		"updated": updated,
	})
}

package handlers

import (
	"errors"

	"rbx-staffhub/internal/adapters/http/middleware"
	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/core/domain"
	"rbx-staffhub/internal/core/services"
	"rbx-staffhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler handles transfer request endpoints
type TransferHandler struct {
	requestService *services.RequestService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(requestService *services.RequestService) *TransferHandler {
	return &TransferHandler{requestService: requestService}
}

// CreateTransferRequest represents a transfer request body
type CreateTransferRequest struct {
	RequestedDepartment    string `json:"requested_department"`
	RequestedSubDepartment string `json:"requested_sub_department"`
	Reason                 string `json:"reason,omitempty"`
}

// Create submits a transfer request
// @Summary Create transfer request
// @Description Submit a department transfer request for the calling account
// @Tags Transfers
// @Accept json
// @Produce json
// @Param body body CreateTransferRequest true "Transfer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /transfer-requests [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var req CreateTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	account, ok := c.Locals(middleware.LocalAccount).(*models.Account)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	created, err := h.requestService.CreateTransfer(c.UserContext(), account, &services.CreateTransferInput{
		RequestedDepartment:    req.RequestedDepartment,
		RequestedSubDepartment: req.RequestedSubDepartment,
		Reason:                 req.Reason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Requested department and sub-department are required")
		}
		return response.InternalServerError(c, "Failed to create transfer request")
	}

	return response.Created(c, "Transfer request submitted", created)
}

// ListMine lists the calling account's transfer requests
// @Summary My transfer requests
// @Description Lists the calling account's transfer requests, newest first
// @Tags Transfers
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /transfer-requests [get]
func (h *TransferHandler) ListMine(c *fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.LocalAccountID).(uint)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	reqs, err := h.requestService.ListMyTransfers(c.UserContext(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list transfer requests")
	}

	return response.Success(c, "Transfer requests retrieved", reqs)
}

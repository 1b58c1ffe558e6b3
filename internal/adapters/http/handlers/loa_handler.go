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

// LoaHandler handles leave-of-absence request endpoints
type LoaHandler struct {
	requestService *services.RequestService
}

// NewLoaHandler creates a new LOA handler
func NewLoaHandler(requestService *services.RequestService) *LoaHandler {
	return &LoaHandler{requestService: requestService}
}

// CreateLoaRequest represents a LOA request body
type CreateLoaRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

// Create submits a leave-of-absence request
// @Summary Create LOA request
// @Description Submit a leave-of-absence request for the calling account
// @Tags LOA
// @Accept json
// @Produce json
// @Param body body CreateLoaRequest true "LOA data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /loa-requests [post]
func (h *LoaHandler) Create(c *fiber.Ctx) error {
	var req CreateLoaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	account, ok := c.Locals(middleware.LocalAccount).(*models.Account)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	created, err := h.requestService.CreateLoa(c.UserContext(), account, &services.CreateLoaInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Start date, end date (YYYY-MM-DD) and reason are required")
		}
		return response.InternalServerError(c, "Failed to create LOA request")
	}

	return response.Created(c, "LOA request submitted", created)
}

// ListMine lists the calling account's LOA requests
// @Summary My LOA requests
// @Description Lists the calling account's LOA requests, newest first
// @Tags LOA
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /loa-requests [get]
func (h *LoaHandler) ListMine(c *fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.LocalAccountID).(uint)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	reqs, err := h.requestService.ListMyLoas(c.UserContext(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list LOA requests")
	}

	return response.Success(c, "LOA requests retrieved", reqs)
}

package handlers

import (
	"errors"
	"strconv"

	"rbx-staffhub/internal/adapters/http/middleware"
	"rbx-staffhub/internal/core/domain"
	"rbx-staffhub/internal/core/services"
	"rbx-staffhub/internal/pkg/pagination"
	"rbx-staffhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles privileged review endpoints
type AdminHandler struct {
	requestService *services.RequestService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(requestService *services.RequestService) *AdminHandler {
	return &AdminHandler{requestService: requestService}
}

// ReviewRequest represents a reviewer decision body
type ReviewRequest struct {
	Status string `json:"status"` // Approved | Rejected
}

// ListTransfers lists all transfer requests
// @Summary All transfer requests
// @Description Lists every transfer request. Supply page/limit to paginate; omit for the full list.
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/transfer-requests [get]
func (h *AdminHandler) ListTransfers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	offset, limit := 0, 0
	if params.Requested {
		offset, limit = params.Offset, params.Limit
	}

	reqs, total, err := h.requestService.ListTransfers(c.UserContext(), offset, limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list transfer requests")
	}

	if params.Requested {
		return response.Success(c, "Transfer requests retrieved", pagination.NewResponse(reqs, params, total))
	}
	return response.Success(c, "Transfer requests retrieved", reqs)
}

// ListLoas lists all LOA requests
// @Summary All LOA requests
// @Description Lists every LOA request. Supply page/limit to paginate; omit for the full list.
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/loa-requests [get]
func (h *AdminHandler) ListLoas(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	offset, limit := 0, 0
	if params.Requested {
		offset, limit = params.Offset, params.Limit
	}

	reqs, total, err := h.requestService.ListLoas(c.UserContext(), offset, limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list LOA requests")
	}

	if params.Requested {
		return response.Success(c, "LOA requests retrieved", pagination.NewResponse(reqs, params, total))
	}
	return response.Success(c, "LOA requests retrieved", reqs)
}

// ReviewTransfer applies a decision to a transfer request
// @Summary Review transfer request
// @Description Approve or reject a transfer request; notifies the owner
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param body body ReviewRequest true "Decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/transfer-requests/{id} [patch]
func (h *AdminHandler) ReviewTransfer(c *fiber.Ctx) error {
	reviewerID, id, status, errResp := h.parseReview(c)
	if errResp != nil {
		return errResp(c)
	}

	req, err := h.requestService.ReviewTransfer(c.UserContext(), id, status, reviewerID)
	if err != nil {
		return h.reviewError(c, err)
	}

	return response.Success(c, "Transfer request reviewed", req)
}

// ReviewLoa applies a decision to a LOA request
// @Summary Review LOA request
// @Description Approve or reject a LOA request; notifies the owner
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param body body ReviewRequest true "Decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/loa-requests/{id} [patch]
func (h *AdminHandler) ReviewLoa(c *fiber.Ctx) error {
	reviewerID, id, status, errResp := h.parseReview(c)
	if errResp != nil {
		return errResp(c)
	}

	req, err := h.requestService.ReviewLoa(c.UserContext(), id, status, reviewerID)
	if err != nil {
		return h.reviewError(c, err)
	}

	return response.Success(c, "LOA request reviewed", req)
}

// parseReview extracts the reviewer, request id and decision from a request
func (h *AdminHandler) parseReview(c *fiber.Ctx) (reviewerID uint, id uint, status domain.RequestStatus, errResp func(*fiber.Ctx) error) {
	reviewerID, ok := c.Locals(middleware.LocalAccountID).(uint)
	if !ok {
		return 0, 0, "", func(c *fiber.Ctx) error {
			return response.Unauthorized(c, "Authentication required")
		}
	}

	parsed, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, 0, "", func(c *fiber.Ctx) error {
			return response.BadRequest(c, "Invalid request id")
		}
	}

	var body ReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return 0, 0, "", func(c *fiber.Ctx) error {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	status = domain.RequestStatus(body.Status)
	if !status.IsDecision() {
		return 0, 0, "", func(c *fiber.Ctx) error {
			return response.BadRequest(c, "Status must be Approved or Rejected")
		}
	}

	return reviewerID, uint(parsed), status, nil
}

// reviewError maps review service errors to responses
func (h *AdminHandler) reviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		return response.BadRequest(c, "Status must be Approved or Rejected")
	case errors.Is(err, domain.ErrRequestNotFound):
		return response.NotFound(c, "Request not found")
	default:
		return response.InternalServerError(c, "Failed to review request")
	}
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/visitor-service/internal/api/dto"
	"github.com/spec-kit/visitor-service/internal/auth"
	"github.com/spec-kit/visitor-service/internal/domain"
	"github.com/spec-kit/visitor-service/internal/service"
	apperrors "github.com/spec-kit/visitor-service/pkg/util"
)

// VisitorHandler exposes visitor record endpoints.
type VisitorHandler struct {
	service *service.VisitorService
}

// NewVisitorHandler constructs handler.
func NewVisitorHandler(visitorService *service.VisitorService) *VisitorHandler {
	return &VisitorHandler{service: visitorService}
}

// List handles GET /visitors.
func (h *VisitorHandler) List(c *fiber.Ctx) error {
	page, err := h.service.ListVisitors(c.UserContext(), parsePageNumber(c))
	if err != nil {
		return err
	}
	return c.JSON(visitorPageResponse(page))
}

// Create handles POST /visitors.
func (h *VisitorHandler) Create(c *fiber.Ctx) error {
	req, err := parseVisitorRequest(c)
	if err != nil {
		return err
	}
	visitor, err := h.service.CreateVisitor(c.UserContext(), visitorInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "visitor": visitorResponse(visitor)})
}

// CreateByStaff handles POST /visitors/by-staff.
func (h *VisitorHandler) CreateByStaff(c *fiber.Ctx) error {
	req, err := parseVisitorRequest(c)
	if err != nil {
		return err
	}
	staffID, err := auth.ResolveStaffID(c, req.StaffAdminID)
	if err != nil {
		return err
	}
	visitor, err := h.service.CreateVisitorByStaff(c.UserContext(), visitorInput(req), staffID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "visitor": visitorResponse(visitor)})
}

// Get handles GET /visitors/:id.
func (h *VisitorHandler) Get(c *fiber.Ctx) error {
	visitor, err := h.service.GetVisitor(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "visitor": visitorResponse(visitor)})
}

// GetCheckIn handles GET /visitors/:id/checked-in.
func (h *VisitorHandler) GetCheckIn(c *fiber.Ctx) error {
	checkedIn, err := h.service.GetCheckInStatus(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "checkedIn": checkedIn})
}

// SetCheckIn handles PATCH /visitors/:id/checked-in.
func (h *VisitorHandler) SetCheckIn(c *fiber.Ctx) error {
	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CheckedIn == nil {
		return apperrors.NewValidationError("checkedIn is required", nil)
	}
	visitor, err := h.service.SetCheckInStatus(c.UserContext(), c.Params("id"), *req.CheckedIn)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "visitor": visitorResponse(visitor)})
}

func (h *VisitorHandler) ListCheckedIn(c *fiber.Ctx) error {
	return h.listByFlag(c, domain.VisitorFlagCheckedIn)
}

func (h *VisitorHandler) ListNotCheckedIn(c *fiber.Ctx) error {
	return h.listByFlag(c, domain.VisitorFlagNotCheckedIn)
}

func (h *VisitorHandler) ListInvited(c *fiber.Ctx) error {
	return h.listByFlag(c, domain.VisitorFlagInvited)
}

func (h *VisitorHandler) ListNotInvited(c *fiber.Ctx) error {
	return h.listByFlag(c, domain.VisitorFlagNotInvited)
}

func (h *VisitorHandler) listByFlag(c *fiber.Ctx, flag domain.VisitorFlag) error {
	page, err := h.service.ListVisitorsByFlag(c.UserContext(), flag, parsePageNumber(c))
	if err != nil {
		return err
	}
	return c.JSON(visitorPageResponse(page))
}

func parseVisitorRequest(c *fiber.Ctx) (*dto.VisitorRequest, error) {
	var req dto.VisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	return &req, nil
}

func visitorInput(req *dto.VisitorRequest) service.VisitorInput {
	return service.VisitorInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Company:      req.Company,
		Purpose:      req.Purpose,
		VisitDate:    req.VisitDate,
		ProfileImage: req.ProfileImage,
		Invited:      req.Invited,
	}
}

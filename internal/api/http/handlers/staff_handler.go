package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/visitor-service/internal/api/dto"
	"github.com/spec-kit/visitor-service/internal/auth"
	"github.com/spec-kit/visitor-service/internal/service"
	apperrors "github.com/spec-kit/visitor-service/pkg/util"
)

// StaffHandler exposes staff account and invitation endpoints.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// Register handles POST /staff.
func (h *StaffHandler) Register(c *fiber.Ctx) error {
	var req dto.StaffRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	staff, err := h.service.Register(c.UserContext(), service.StaffRegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
		Address:      req.Address,
		EmployerID:   req.EmployerID,
		Department:   req.Department,
		DOB:          req.DOB,
		Gender:       req.Gender,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "staff": staffResponse(staff)})
}

// Login handles POST /staff/login.
func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "token": result.Token})
}

// InviteVisitor handles POST /staff/invite.
func (h *StaffHandler) InviteVisitor(c *fiber.Ctx) error {
	var req dto.InviteVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	staffID, err := auth.ResolveStaffID(c, req.StaffID)
	if err != nil {
		return err
	}
	if err := h.service.InviteVisitor(c.UserContext(), req.Email, staffID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Invitation sent successfully"})
}

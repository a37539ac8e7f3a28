package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/visitor-service/internal/api/dto"
	"github.com/spec-kit/visitor-service/internal/domain"
)

const dobLayout = "2006-01-02"

func staffResponse(staff *domain.Staff) dto.StaffResponse {
	resp := dto.StaffResponse{
		ID:           staff.ID,
		FullName:     staff.FullName,
		Email:        staff.Email,
		Phone:        staff.Phone,
		Address:      staff.Address,
		EmployerID:   staff.EmployerID,
		Department:   staff.Department,
		Gender:       staff.Gender,
		ProfileImage: staff.ProfileImage,
		CreatedAt:    staff.CreatedAt,
		UpdatedAt:    staff.UpdatedAt,
	}
	if staff.DOB != nil {
		dob := staff.DOB.Format(dobLayout)
		resp.DOB = &dob
	}
	return resp
}

func visitorResponse(v *domain.Visitor) dto.VisitorResponse {
	return dto.VisitorResponse{
		ID:             v.ID,
		FullName:       v.FullName,
		Email:          v.Email,
		Phone:          v.Phone,
		Address:        v.Address,
		Company:        v.Company,
		Purpose:        v.Purpose,
		VisitDate:      v.VisitDate,
		ProfileImage:   v.ProfileImage,
		CheckedIn:      v.CheckedIn,
		Invited:        v.Invited,
		CreatedByStaff: v.CreatedByStaff,
		StaffAdminID:   v.StaffAdminID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func visitorPageResponse(page *domain.VisitorPage) fiber.Map {
	items := make([]dto.VisitorResponse, 0, len(page.Visitors))
	for i := range page.Visitors {
		items = append(items, visitorResponse(&page.Visitors[i]))
	}
	return fiber.Map{
		"success":  true,
		"visitors": items,
		"page":     page.Page,
		"pages":    page.Pages,
		"count":    page.Count,
	}
}

// parsePageNumber reads ?pageNumber=, falling back to 1 when absent or not a number.
func parsePageNumber(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("pageNumber"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

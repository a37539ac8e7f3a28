package dto

import "time"

// VisitorRequest lists the fields a caller may set on a new visitor.
type VisitorRequest struct {
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Company      string     `json:"company"`
	Purpose      string     `json:"purpose"`
	VisitDate    *time.Time `json:"visitDate"`
	ProfileImage *string    `json:"profileImage"`
	Invited      bool       `json:"invited"`
	StaffAdminID string     `json:"staffAdminId"`
}

// CheckInRequest payload for PATCH /visitors/:id/checked-in.
type CheckInRequest struct {
	CheckedIn *bool `json:"checkedIn"`
}

// VisitorResponse is the visitor representation.
type VisitorResponse struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	Company        string     `json:"company"`
	Purpose        string     `json:"purpose"`
	VisitDate      *time.Time `json:"visitDate,omitempty"`
	ProfileImage   *string    `json:"profileImage,omitempty"`
	CheckedIn      bool       `json:"checkedIn"`
	Invited        bool       `json:"invited"`
	CreatedByStaff bool       `json:"createdByStaff"`
	StaffAdminID   *string    `json:"staffAdminId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

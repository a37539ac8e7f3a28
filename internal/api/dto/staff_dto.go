package dto

import "time"

// StaffRegisterRequest payload.
type StaffRegisterRequest struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	EmployerID   *string `json:"employerId"`
	Department   string  `json:"department"`
	DOB          string  `json:"dob"`
	Gender       string  `json:"gender"`
	ProfileImage *string `json:"profileImage"`
}

// StaffLoginRequest payload.
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// InviteVisitorRequest payload. StaffID defaults to the authenticated staff.
type InviteVisitorRequest struct {
	Email   string `json:"email"`
	StaffID string `json:"staffId"`
}

// StaffResponse is the public staff representation; the password hash is never included.
type StaffResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	EmployerID   *string   `json:"employerId,omitempty"`
	Department   string    `json:"department"`
	DOB          *string   `json:"dob,omitempty"`
	Gender       string    `json:"gender"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

package domain

import "time"

// Staff models an employee or administrator account.
type Staff struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	EmployerID   *string
	Department   string
	DOB          *time.Time
	Gender       string
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

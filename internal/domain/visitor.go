package domain

import "time"

// VisitorPageSize is the fixed number of visitors returned per listing page.
const VisitorPageSize = 15

// Visitor is a person invited to, or scheduling, a visit.
type Visitor struct {
	ID             string
	FullName       string
	Email          string
	Phone          string
	Address        string
	Company        string
	Purpose        string
	VisitDate      *time.Time
	ProfileImage   *string
	CheckedIn      bool
	Invited        bool
	CreatedByStaff bool
	StaffAdminID   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VisitorFlag selects a boolean predicate for flag listings.
type VisitorFlag string

const (
	VisitorFlagCheckedIn    VisitorFlag = "checked-in"
	VisitorFlagNotCheckedIn VisitorFlag = "not-checked-in"
	VisitorFlagInvited      VisitorFlag = "invited"
	VisitorFlagNotInvited   VisitorFlag = "not-invited"
)

// Valid reports whether the flag is one of the known predicates.
func (f VisitorFlag) Valid() bool {
	switch f {
	case VisitorFlagCheckedIn, VisitorFlagNotCheckedIn, VisitorFlagInvited, VisitorFlagNotInvited:
		return true
	}
	return false
}

// VisitorPage is one page of a visitor listing.
type VisitorPage struct {
	Visitors []Visitor
	Page     int
	Pages    int
	Count    int
}

// PageCount returns ceil(count/size).
func PageCount(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

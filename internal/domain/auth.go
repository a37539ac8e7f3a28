package domain

// Principal is the authenticated staff caller derived from a bearer token.
type Principal struct {
	StaffID string
	Email   string
}

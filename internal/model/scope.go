package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID string
}

// IsZero reports whether no user is attached.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}

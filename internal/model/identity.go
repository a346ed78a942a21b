// internal/model/identity.go
package model

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Identity is an authenticated user's credentials and profile attributes.
// Immutable once logged in; at most one identity is active at a time.
type Identity struct {
	Email      string `json:"email"`
	Password   string `json:"-"`
	Role       Role   `json:"role"`
	Country    string `json:"country"`
	Department string `json:"department"`
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Brokerage administrator - can mutate records and run payroll
	RoleUser  Role = "user"  // Regular member - read-only access
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Name            *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	LastSignedIn    time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user can perform admin-only mutations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

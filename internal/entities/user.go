package entities

import "time"

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Authorize reports ErrInsufficientRole unless role is one of required.
// An empty required list admits every valid role.
func Authorize(role Role, required ...Role) error {
	if !role.IsValid() {
		return ErrInsufficientRole
	}
	if len(required) == 0 {
		return nil
	}
	for _, r := range required {
		if r == role {
			return nil
		}
	}
	return ErrInsufficientRole
}

// Principal is the authenticated caller carried by a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

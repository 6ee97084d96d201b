package domain

import "time"

// Permissions checked by authorization policies. They are stored per user and
// embedded into the token at issuance.
const (
	PermDeleteTask = "ExcluirTarefa"
)

// RoleUser is the role every registered account starts with.
const RoleUser = "user"

// User models an authenticated actor. Credentials live in the identity store;
// the API never holds an authoritative in-memory copy.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	EmailConfirmed bool      `json:"email_confirmed"`
	Permissions    []string  `json:"permissions"`
	Roles          []string  `json:"roles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasPermission reports whether the user holds the named permission.
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

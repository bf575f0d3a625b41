package domain

import "time"

// Role is the closed set of access levels known to the admin area.
// Construct from external input via ParseRole; direct casting bypasses
// validation.
type Role string

const (
	// RoleAdmin is the elevated role: full access, including destructive
	// operations and user management.
	RoleAdmin Role = "ADMIN"
	// RoleEditor is the standard role: may read admin listings but not
	// mutate site-critical resources.
	RoleEditor Role = "EDITOR"
)

var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleEditor: true,
}

// ParseRole validates external input against the role set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !validRoles[r] {
		return "", ErrInvalidRole
	}
	return r, nil
}

// AtLeast reports whether the role satisfies the given minimum. It is the
// single ordering function for the two-level hierarchy: an elevated minimum
// admits only RoleAdmin, a standard minimum admits any valid role.
func (r Role) AtLeast(min Role) bool {
	if !validRoles[r] {
		return false
	}
	if min == RoleAdmin {
		return r == RoleAdmin
	}
	return true
}

func (r Role) String() string { return string(r) }

// User is the persisted account record for the admin area.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the minimal authenticated principal carried by a session.
// It is immutable for the lifetime of the session; a new sign-in issues a
// fresh one.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IdentityOf derives the session principal from a user record.
func IdentityOf(u *User) Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

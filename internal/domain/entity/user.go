package entity

// Valid roles for User.
const (
	RoleAdmin     = "admin"
	RoleEmployee  = "employee"
	RoleSuperuser = "superuser"
)

// User is a member of the authentication system; users also sign offers.
type User struct {
	ID           string
	Login        string // unique across all users
	Name         string
	PasswordHash string // bcrypt hash, never plain after persisting
	Role         string // admin, employee, superuser
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleSuperuser:
		return true
	}
	return false
}

// IsAdmin reports whether the user holds an admin-or-higher role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperuser
}

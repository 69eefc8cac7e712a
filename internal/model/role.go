package model

// AdminUsername is the fixed sentinel identifying the administrator account.
const AdminUsername = "Admin"

// Role describes what a user is allowed to do. It is derived from the
// session on every render and never stored.
type Role int

const (
	// RoleAnonymous means no session exists; the catalog is view-only.
	RoleAnonymous Role = iota

	// RoleUser is any authenticated non-admin account.
	RoleUser

	// RoleAdmin has full CRUD and user management rights.
	RoleAdmin
)

// String returns the display name of the role.
func (r Role) String() string {
	switch r {
	case RoleAnonymous:
		return "Anonymous"
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// RoleFor derives the role for a session username. An empty username means
// no session.
func RoleFor(username string) Role {
	switch username {
	case "":
		return RoleAnonymous
	case AdminUsername:
		return RoleAdmin
	default:
		return RoleUser
	}
}

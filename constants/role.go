package constants

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Roles holds the allowed values for the role field in User.
var Roles = []string{RoleUser, RoleAdmin}

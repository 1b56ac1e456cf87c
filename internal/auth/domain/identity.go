package domain

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Identity is the authenticated session's access level and display name.
type Identity struct {
	Role string
	Name string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Session binds an opaque token to an identity for the life of the
// process.
type Session struct {
	Token    string
	Identity Identity
}

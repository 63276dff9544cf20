package domain

// Role identifies which portal a user belongs to.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
	RoleRetailer Role = "retailer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleEmployee, RoleRetailer:
		return true
	}
	return false
}

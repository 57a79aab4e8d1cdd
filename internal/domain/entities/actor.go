package entities

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
	RoleSystem Role = "system"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleBuyer, RoleVendor, RoleAdmin, RoleSystem:
		return true
	default:
		return false
	}
}

// Actor identifies who triggered an operation. Identity is asserted by the caller.
type Actor struct {
	Role Role   `json:"role"`
	ID   string `json:"id,omitempty"`
}

// SystemActor is used for clock-driven transitions such as expiry.
var SystemActor = Actor{Role: RoleSystem, ID: "system"}

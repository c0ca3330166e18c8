package types

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Caller is the authenticated identity a request acts as. It is resolved by
// the auth middleware and passed explicitly into every service operation.
type Caller struct {
	ID       uint64 `json:"id"`
	Role     string `json:"role"`
	OfficeID uint64 `json:"office_id"`
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

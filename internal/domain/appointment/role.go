package appointment

// Role is a closed enumeration. Permission checks switch over it
// exhaustively, so an unknown role can never fall through a guard.
type Role int

const (
	RoleClient Role = iota
	RoleBarber
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleBarber:
		return "barber"
	}
	return "unknown"
}

func ParseRole(s string) (Role, bool) {
	switch s {
	case "client":
		return RoleClient, true
	case "barber":
		return RoleBarber, true
	}
	return RoleClient, false
}

// Actor is the identity resolved by the auth layer. The engine never
// authenticates, it only authorizes against this.
type Actor struct {
	ID   uint
	Role Role
}

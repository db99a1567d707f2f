package user

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation as reported by the
// identity provider.
type Actor struct {
	ID     uuid.UUID
	Role   Role
	Gender Gender
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsClient() bool { return a.Role == RoleClient }
func (a Actor) IsBarber() bool { return a.Role == RoleBarber }
func (a Actor) IsAdmin() bool  { return a.Role == RoleAdmin }

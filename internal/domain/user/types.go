package user

import "errors"

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidGender = errors.New("invalid gender")
)

type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleBarber, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Gender is informational only; the identity provider may omit it.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
	GenderOther       Gender = "other"
)

func NewGender(s string) (Gender, error) {
	g := Gender(s)
	switch g {
	case GenderUnspecified, GenderFemale, GenderMale, GenderOther:
		return g, nil
	default:
		return "", ErrInvalidGender
	}
}

package usecase

import (
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/pkg/jwt"
)

// TokenValidator is the identity provider as seen by the middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, err
	}
	// Unknown gender values are dropped rather than rejecting the token.
	gender, err := user.NewGender(claims.Gender)
	if err != nil {
		gender = user.GenderUnspecified
	}

	actor := user.NewActor(claims.UserID, role)
	actor.Gender = gender
	return actor, nil
}

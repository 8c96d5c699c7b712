package usecase

import (
	"cleanpro-api/internal/pkg/jwt"
)

type TokenValidator interface {
	ValidateToken(token string) (email, role string, err error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (string, string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return "", "", err
	}
	return claims.Email, claims.Role, nil
}

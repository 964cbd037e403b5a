package utils

import (
	"errors"

	"aura-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// PrincipalClaims is the decoded identity attached to each request.
type PrincipalClaims struct {
	UserID   string
	Role     string
	ClinicID string
}

func ParseUserJWT(tokenString, secret string) (*PrincipalClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	principal := &PrincipalClaims{}
	if sub, ok := claims["sub"].(string); ok {
		principal.UserID = sub
	}
	if role, ok := claims["role"].(string); ok {
		principal.Role = role
	}
	if clinicID, ok := claims["clinic_id"].(string); ok {
		principal.ClinicID = clinicID
	}
	if principal.UserID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return principal, nil
}

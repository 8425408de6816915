package service

import (
	"crypto/subtle"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
)

// AuthService checks the single admin credential pair. No session is issued.
type AuthService struct {
	Username string
	Password string
}

func (a *AuthService) Login(username, password string) error {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return appErrors.NewValidation("username and password are required", missing...)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	if !userOK || !passOK {
		return appErrors.ErrUnauthorized
	}
	return nil
}

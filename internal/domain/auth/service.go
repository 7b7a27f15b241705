package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "assovol/internal/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service verifies the single admin identity against the externally
// configured username and bcrypt hash and mints access tokens for it.
type Service struct {
	username     string
	passwordHash string
	jwt          *jwtsvc.Service
}

func NewService(username, passwordHash string, jwt *jwtsvc.Service) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		jwt:          jwt,
	}
}

// Login returns a signed token when the credentials match, or
// ErrInvalidCredentials. The same error covers an unknown username and a
// wrong password.
func (s *Service) Login(username, password string) (string, error) {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil || !nameOK {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(s.username)
}

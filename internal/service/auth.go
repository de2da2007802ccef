package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/GraemeWada/signoutapp/internal/config"
)

var ErrWrongCredentials = errors.New("wrong username or password")

// AuthService implements the admin login gate. There are no user
// accounts; a single credential from configuration guards the admin
// surface. The configured password is hashed once at startup so only
// the hash stays in memory.
type AuthService struct {
	username     string
	passwordHash []byte
}

func NewAuthService(conf *config.AdminConfig) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(conf.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return &AuthService{
		username:     conf.Username,
		passwordHash: hash,
	}, nil
}

// Login checks the credential pair. It succeeds silently or fails with
// ErrWrongCredentials; which half was wrong is not disclosed.
func (s *AuthService) Login(username, password string) error {
	if username != s.username {
		return ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrWrongCredentials
	}

	return nil
}

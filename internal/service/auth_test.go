package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraemeWada/signoutapp/internal/config"
)

func TestAuthService_Login(t *testing.T) {
	svc, err := NewAuthService(&config.AdminConfig{
		Username: "admin",
		Password: "password",
	})
	require.NoError(t, err)

	assert.NoError(t, svc.Login("admin", "password"))
	assert.ErrorIs(t, svc.Login("admin", "wrong"), ErrWrongCredentials)
	assert.ErrorIs(t, svc.Login("someone", "password"), ErrWrongCredentials)
}

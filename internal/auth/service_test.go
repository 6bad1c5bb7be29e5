package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFabricatesUserAndToken(t *testing.T) {
	svc := NewService("test-secret", 0)

	user, token, err := svc.Login(context.Background(), "pat@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "pat@example.com", user.Email)
	assert.Equal(t, "Pat", user.FirstName)
	assert.Equal(t, "User", user.LastName)

	claims, err := ParseToken([]byte("test-secret"), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.True(t, HasRole(claims.Roles, "customer"))
}

func TestRegisterKeepsSubmittedNames(t *testing.T) {
	svc := NewService("test-secret", 0)

	user, _, err := svc.Register(context.Background(), "kim@example.com", "Kim", "Lee")
	require.NoError(t, err)
	assert.Equal(t, "Kim", user.FirstName)
	assert.Equal(t, "Lee", user.LastName)
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	svc := NewService("test-secret", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.Login(ctx, "pat@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

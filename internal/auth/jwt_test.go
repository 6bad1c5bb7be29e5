package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndParseRoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, "user-1", []string{"customer"})
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, []string{"customer"}, claims.Roles)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "user-1", []string{"customer"})
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestGetBearerToken(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetBearerToken(r))

	r.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", GetBearerToken(r))

	r.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", GetBearerToken(r))

	r.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, GetBearerToken(r))
}

func TestHasRole(t *testing.T) {
	roles := []string{"customer", "admin"}
	assert.True(t, HasRole(roles, "admin"))
	assert.False(t, HasRole(roles, "support"))
	assert.False(t, HasRole(nil, "admin"))
}

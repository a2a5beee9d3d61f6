package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexmobile/shop/internal/infrastructure/config"
)

func sessionConfig(ttl time.Duration) config.SessionConfig {
	return config.SessionConfig{Secret: "test-secret", Issuer: "test", TTL: ttl}
}

func TestSessionIssueAndVerify(t *testing.T) {
	m := NewSessionManager(sessionConfig(time.Hour))

	token, err := m.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestSessionVerifyRejectsGarbage(t *testing.T) {
	m := NewSessionManager(sessionConfig(time.Hour))

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}

func TestSessionVerifyRejectsWrongSecret(t *testing.T) {
	m := NewSessionManager(sessionConfig(time.Hour))
	other := NewSessionManager(config.SessionConfig{Secret: "other-secret", Issuer: "test", TTL: time.Hour})

	token, err := other.Issue("user-1")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestSessionVerifyRejectsExpiredToken(t *testing.T) {
	m := NewSessionManager(sessionConfig(-time.Minute))

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", digest)

	assert.True(t, h.Verify("admin123", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("admin123", "not-a-digest"))
}

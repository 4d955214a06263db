package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgauth "github.com/vuapod/orderstats-backend/pkg/auth"
	"github.com/vuapod/orderstats-backend/pkg/config"
	pkgerrors "github.com/vuapod/orderstats-backend/pkg/errors"
	"github.com/vuapod/orderstats-backend/pkg/security"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "orderstats-test",
		ExpirationMinutes: 2880,
	}
}

func newVerifier(t *testing.T, username, password string) *ConfigVerifier {
	t.Helper()

	hash, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	})
	require.NoError(t, err)

	return NewConfigVerifier(config.AuthConfig{Username: username, PasswordHash: hash})
}

func TestLoginIssuesToken(t *testing.T) {
	// ParseAccessToken checks expiry against the wall clock, so issue
	// relative to it.
	issued := time.Now()
	svc, err := NewService(ServiceParams{
		Verifier:  newVerifier(t, "vuapod", "correct-horse"),
		JWTConfig: testJWTConfig(),
		Now:       func() time.Time { return issued },
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "vuapod", "correct-horse")
	require.NoError(t, err)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), token)
	require.NoError(t, err)
	assert.Equal(t, "vuapod", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Verifier:  newVerifier(t, "vuapod", "correct-horse"),
		JWTConfig: testJWTConfig(),
	})
	require.NoError(t, err)

	for _, pair := range [][2]string{
		{"vuapod", "wrong"},
		{"someone-else", "correct-horse"},
	} {
		_, err := svc.Login(context.Background(), pair[0], pair[1])
		require.Error(t, err)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
	}
}

func TestNewServiceRequiresVerifier(t *testing.T) {
	_, err := NewService(ServiceParams{JWTConfig: testJWTConfig()})
	assert.Error(t, err)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuapod/orderstats-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "orderstats-test",
		ExpirationMinutes: 2880,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	// Parse validates expiry against the wall clock, so mint relative to it.
	now := time.Now().Truncate(time.Second)

	token, err := MintAccessToken(cfg, now, "vuapod")
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "vuapod", claims.Username)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	// 48h session window
	assert.Equal(t, now.Add(48*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now().Add(-49 * time.Hour)

	token, err := MintAccessToken(cfg, issued, "vuapod")
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), "vuapod")
	require.NoError(t, err)

	other := cfg
	other.Secret = "different"
	_, err = ParseAccessToken(other, token)
	assert.Error(t, err)
}

func TestMintAccessTokenValidatesInputs(t *testing.T) {
	cfg := testJWTConfig()

	_, err := MintAccessToken(config.JWTConfig{Issuer: "x", ExpirationMinutes: 1}, time.Now(), "u")
	assert.Error(t, err)

	_, err = MintAccessToken(cfg, time.Now(), "  ")
	assert.Error(t, err)
}

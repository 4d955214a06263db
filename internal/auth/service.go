package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	pkgauth "github.com/vuapod/orderstats-backend/pkg/auth"
	"github.com/vuapod/orderstats-backend/pkg/config"
	pkgerrors "github.com/vuapod/orderstats-backend/pkg/errors"
	"github.com/vuapod/orderstats-backend/pkg/security"
)

// CredentialVerifier checks a username/password pair. Injected so the login
// flow never embeds credentials itself.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// Service handles the dashboard login and token issuance.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	verifier CredentialVerifier
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// ServiceParams wires the auth service dependencies.
type ServiceParams struct {
	Verifier  CredentialVerifier
	JWTConfig config.JWTConfig
	Now       func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Verifier == nil {
		return nil, fmt.Errorf("credential verifier required")
	}
	if params.Now == nil {
		params.Now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		verifier: params.Verifier,
		jwtCfg:   params.JWTConfig,
		now:      params.Now,
	}, nil
}

// Login verifies the credential pair and mints a session token. The token
// carries its own expiry; nothing is persisted server-side.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying credentials")
	}
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), username)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token")
	}
	return token, nil
}

// ConfigVerifier validates against the single credential pair from config,
// with the password held as an argon2id hash.
type ConfigVerifier struct {
	username     string
	passwordHash string
}

func NewConfigVerifier(cfg config.AuthConfig) *ConfigVerifier {
	return &ConfigVerifier{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
	}
}

func (v *ConfigVerifier) Verify(_ context.Context, username, password string) (bool, error) {
	// Check the password unconditionally so a wrong username costs the
	// same time as a wrong password.
	match, err := security.VerifyPassword(password, v.passwordHash)
	if err != nil {
		return false, err
	}
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	return match && userMatch, nil
}

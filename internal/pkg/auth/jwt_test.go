package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/examportal/internal/app/models"
)

func testConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExp:     15 * time.Minute,
		RefreshExp:    168 * time.Hour,
		Issuer:        "examportal.app",
		Audience:      "examportal-clients",
	}
}

func testIdentity() models.Identity {
	return models.Identity{ID: 42, Email: "admin@example.com", Name: "Admin", Kind: models.IdentityAdmin}
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	svc := NewTokenService(testConfig())

	pair, err := svc.GenerateTokenPair(testIdentity())
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.IdentityID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.IdentityAdmin, claims.Kind)

	refreshClaims, err := svc.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), refreshClaims.IdentityID)
}

func TestVerifyAccessTokenRejectsRefreshToken(t *testing.T) {
	svc := NewTokenService(testConfig())

	pair, err := svc.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	// A refresh token is signed with the refresh secret, so the access
	// verifier must reject it at the signature level.
	_, err = svc.VerifyAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = svc.VerifyRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyCrossSecret(t *testing.T) {
	svc := NewTokenService(testConfig())

	otherCfg := testConfig()
	otherCfg.AccessSecret = "a-different-secret"
	other := NewTokenService(otherCfg)

	pair, err := other.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.AccessExp = -time.Minute
	svc := NewTokenService(cfg)

	pair, err := svc.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyIssuerMismatch(t *testing.T) {
	issuing := testConfig()
	issuing.Issuer = "someone-else"
	issuer := NewTokenService(issuing)

	pair, err := issuer.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	svc := NewTokenService(testConfig())
	_, err = svc.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrClaimMismatch)
}

func TestVerifyAudienceMismatch(t *testing.T) {
	issuing := testConfig()
	issuing.Audience = "other-clients"
	issuer := NewTokenService(issuing)

	pair, err := issuer.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	svc := NewTokenService(testConfig())
	_, err = svc.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrClaimMismatch)
}

func TestVerifyGarbageToken(t *testing.T) {
	svc := NewTokenService(testConfig())

	_, err := svc.VerifyAccessToken("not.a.token")
	assert.Error(t, err)
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kaan/examportal/internal/app/models"
)

// Token verification errors
var (
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
	ErrClaimMismatch    = errors.New("token claim mismatch")
	ErrInvalidToken     = errors.New("invalid token")
)

// Token type discriminator values
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenConfig defines signing settings. Access and refresh tokens are signed
// with distinct secrets so one can never be verified as the other.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExp     time.Duration
	RefreshExp    time.Duration
	Issuer        string
	Audience      string
}

// TokenService issues and verifies the portal's token pairs.
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new token service.
func NewTokenService(config TokenConfig) *TokenService {
	return &TokenService{config: config}
}

// Claims is the identity claim set embedded in every token.
type Claims struct {
	IdentityID int64               `json:"identityId"`
	Email      string              `json:"email"`
	Name       string              `json:"name"`
	Kind       models.IdentityKind `json:"kind"`
	TokenType  string              `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of issuing access and refresh tokens together.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        int64
	RefreshExpiresIn int64
}

// GenerateTokenPair creates a short-lived access token and a longer-lived
// refresh token for the identity, each carrying a type discriminator.
func (s *TokenService) GenerateTokenPair(identity models.Identity) (TokenPair, error) {
	accessToken, err := s.sign(identity, TokenTypeAccess, s.config.AccessSecret, s.config.AccessExp)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, err := s.sign(identity, TokenTypeRefresh, s.config.RefreshSecret, s.config.RefreshExp)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        int64(s.config.AccessExp.Seconds()),
		RefreshExpiresIn: int64(s.config.RefreshExp.Seconds()),
	}, nil
}

func (s *TokenService) sign(identity models.Identity, tokenType, secret string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		IdentityID: identity.ID,
		Email:      identity.Email,
		Name:       identity.Name,
		Kind:       identity.Kind,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Audience:  jwt.ClaimStrings{s.config.Audience},
			Subject:   fmt.Sprintf("%d", identity.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken verifies a token against the access secret and the
// "access" type discriminator.
func (s *TokenService) VerifyAccessToken(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.config.AccessSecret, TokenTypeAccess)
}

// VerifyRefreshToken verifies a token against the refresh secret and the
// "refresh" type discriminator.
func (s *TokenService) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.config.RefreshSecret, TokenTypeRefresh)
}

func (s *TokenService) verify(tokenString, secret, wantType string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, ErrClaimMismatch
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != wantType {
		return nil, ErrClaimMismatch
	}
	if claims.IdentityID <= 0 || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RefreshTokenExpiry returns the absolute expiry for a refresh token issued now.
func (s *TokenService) RefreshTokenExpiry() time.Time {
	return time.Now().Add(s.config.RefreshExp)
}

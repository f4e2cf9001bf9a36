package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/repositories"
	"github.com/kaan/examportal/internal/pkg/apperrors"
	"github.com/kaan/examportal/internal/pkg/auth"
	"github.com/kaan/examportal/internal/pkg/logger"
	"github.com/kaan/examportal/internal/pkg/validation"
)

type authService struct {
	adminRepo    *repositories.AdminRepository
	userRepo     *repositories.UserRepository
	tokenRepo    *repositories.TokenRepository
	tokenService *auth.TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo *repositories.AdminRepository,
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	tokenService *auth.TokenService,
) AuthService {
	return &authService{
		adminRepo:    adminRepo,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
	}
}

// Login authenticates a credential pair against the table named by kind.
// Unknown email, disabled account and wrong password all surface to the
// caller as ErrInvalidCredentials so responses never leak which one it was.
func (s *authService) Login(ctx context.Context, kind models.IdentityKind, email, password string) (*dto.AuthResponse, error) {
	normalized := validation.NormalizeEmail(email)

	identity, hash, active, err := s.lookup(ctx, kind, normalized)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Debug().Str("email", normalized).Str("kind", string(kind)).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !active {
		logger.Debug().Str("email", normalized).Str("kind", string(kind)).Msg("Login attempt for disabled account")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(hash, password) {
		logger.Debug().Str("email", normalized).Str("kind", string(kind)).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(ctx, identity)
}

func (s *authService) lookup(ctx context.Context, kind models.IdentityKind, email string) (models.Identity, string, bool, error) {
	switch kind {
	case models.IdentityAdmin:
		admin, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return models.Identity{}, "", false, err
		}
		return admin.AsIdentity(), admin.Password, admin.IsActive, nil
	case models.IdentityUser:
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return models.Identity{}, "", false, err
		}
		return user.AsIdentity(), user.Password, user.IsActive, nil
	default:
		return models.Identity{}, "", false, fmt.Errorf("unknown identity kind: %s", kind)
	}
}

// issue generates a token pair and persists the refresh token so it can be
// revoked later.
func (s *authService) issue(ctx context.Context, identity models.Identity) (*dto.AuthResponse, error) {
	pair, err := s.tokenService.GenerateTokenPair(identity)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.CreateToken(ctx, pair.RefreshToken, identity.Kind, identity.ID, s.tokenService.RefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error persisting refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           pair.AccessToken,
			TokenType:             "Bearer",
			ExpiresIn:             pair.ExpiresIn,
			RefreshToken:          pair.RefreshToken,
			RefreshTokenExpiresIn: pair.RefreshExpiresIn,
		},
		Identity: identity,
	}, nil
}

// Refresh rotates a refresh token: the presented token must verify and still
// be live in storage, and it is revoked before the new pair is issued.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	kind, identityID, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if kind != claims.Kind || identityID != claims.IdentityID {
		return nil, auth.ErrClaimMismatch
	}

	identity, _, active, err := s.lookup(ctx, kind, claims.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}
	if !active {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issue(ctx, identity)
}

// Logout revokes the presented refresh token. Tokens that are already
// unknown or revoked are treated as logged out.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// RegisterUser creates a regular account and logs it straight in.
func (s *authService) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.AuthResponse, error) {
	normalized := validation.NormalizeEmail(req.Email)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    normalized,
		Password: hash,
		Name:     req.Name,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("email", normalized).Int64("userId", user.ID).Msg("User registered")
	return s.issue(ctx, user.AsIdentity())
}

// CreateAdmin creates an administrator account on behalf of a super admin.
func (s *authService) CreateAdmin(ctx context.Context, creatorID int64, req *dto.CreateAdminRequest) (*models.Admin, error) {
	normalized := validation.NormalizeEmail(req.Email)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		Email:        normalized,
		Password:     hash,
		Name:         req.Name,
		IsActive:     true,
		IsSuperAdmin: req.IsSuperAdmin,
		CreatedBy:    &creatorID,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info().Str("email", normalized).Int64("adminId", admin.ID).Int64("createdBy", creatorID).Msg("Admin created")
	return admin, nil
}

func (s *authService) SetAdminActive(ctx context.Context, id int64, isActive bool) error {
	return s.adminRepo.SetActive(ctx, id, isActive)
}

func (s *authService) IsSuperAdmin(ctx context.Context, adminID int64) (bool, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return false, err
	}
	return admin.IsSuperAdmin, nil
}

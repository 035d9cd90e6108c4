package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/inflowkit/internal/config"
	"github.com/ferdiebergado/inflowkit/internal/platform/hash"
	"github.com/ferdiebergado/inflowkit/internal/platform/jwt"
	"github.com/ferdiebergado/inflowkit/internal/user"
)

var (
	ErrUserExists   = errors.New("auth service: user already exists")
	ErrInvalidLogin = errors.New("auth service: invalid credentials")
)

const maskChar = "*"

type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
}

type Service struct {
	userSvc user.Service
	hasher  hash.Hasher
	signer  jwt.Signer
	cfg     *config.Config
}

var _ AuthService = (*Service)(nil)

func NewService(userSvc user.Service, providers *Providers, cfg *config.Config) *Service {
	return &Service{
		userSvc: userSvc,
		hasher:  providers.Hasher,
		signer:  providers.Signer,
		cfg:     cfg,
	}
}

type RegisterUserParams struct {
	Email    string
	Password string
}

func (p *RegisterUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginUserParams struct {
	Email    string
	Password string
}

func (p *LoginUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	u := user.User{}
	email := params.Email
	existing, err := s.userSvc.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return u, fmt.Errorf("find user with email %s: %w", email, err)
	}

	if existing != nil {
		return u, ErrUserExists
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return u, fmt.Errorf("hasher hash: %w", err)
	}

	newUser, err := s.userSvc.CreateUser(ctx, user.CreateUserParams{Email: email, PasswordHash: hashed})
	if err != nil {
		return u, fmt.Errorf("create user %s: %w", email, err)
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, params LoginUserParams) (accessToken, refreshToken string, err error) {
	u, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrInvalidLogin
		}
		return "", "", fmt.Errorf("find user by email %q: %w", params.Email, err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return "", "", fmt.Errorf("verify password for user %q: %w", u.Email, err)
	}

	if !ok {
		return "", "", ErrInvalidLogin
	}

	return s.issueTokens(u.ID, u.Email)
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (newAccess, newRefresh string, err error) {
	claims, err := s.signer.Verify(refreshToken)
	if err != nil {
		return "", "", ErrInvalidLogin
	}

	// Tokens outlive accounts, so confirm the user still exists.
	u, err := s.userSvc.FindUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrInvalidLogin
		}
		return "", "", fmt.Errorf("find user %q: %w", claims.UserID, err)
	}

	return s.issueTokens(u.ID, u.Email)
}

func (s *Service) issueTokens(userID, subject string) (accessToken, refreshToken string, err error) {
	audience := []string{s.cfg.JWT.Issuer}

	accessToken, err = s.signer.Sign(userID, audience, s.cfg.JWT.TTL.Duration)
	if err != nil {
		return "", "", fmt.Errorf("sign access token for %q: %w", subject, err)
	}

	refreshToken, err = s.signer.Sign(userID, audience, s.cfg.JWT.RefreshTTL.Duration)
	if err != nil {
		return "", "", fmt.Errorf("sign refresh token for %q: %w", subject, err)
	}

	return accessToken, refreshToken, nil
}

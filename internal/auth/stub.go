package auth

import (
	"context"

	"github.com/ferdiebergado/inflowkit/internal/user"
)

// StubService is an AuthService test double with injectable behavior.
type StubService struct {
	RegisterUserFunc func(ctx context.Context, params RegisterUserParams) (user.User, error)
	LoginUserFunc    func(ctx context.Context, params LoginUserParams) (string, string, error)
	RefreshTokenFunc func(ctx context.Context, refreshToken string) (string, string, error)
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	return s.RegisterUserFunc(ctx, params)
}

func (s *StubService) LoginUser(ctx context.Context, params LoginUserParams) (string, string, error) {
	return s.LoginUserFunc(ctx, params)
}

func (s *StubService) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	return s.RefreshTokenFunc(ctx, refreshToken)
}

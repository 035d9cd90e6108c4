package user

import (
	"context"
)

// UserRepository is the storage contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Find(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type service struct {
	repo UserRepository
}

var _ Service = (*service)(nil)

func NewService(repo UserRepository) *service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	return s.repo.Create(ctx, params)
}

func (s *service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) FindUser(ctx context.Context, userID string) (*User, error) {
	return s.repo.Find(ctx, userID)
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

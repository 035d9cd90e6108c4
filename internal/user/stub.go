package user

import "context"

// StubService is a Service test double with injectable behavior.
type StubService struct {
	CreateUserFunc      func(ctx context.Context, params CreateUserParams) (User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*User, error)
	FindUserFunc        func(ctx context.Context, userID string) (*User, error)
	ListUsersFunc       func(ctx context.Context) ([]User, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) FindUser(ctx context.Context, userID string) (*User, error) {
	return s.FindUserFunc(ctx, userID)
}

func (s *StubService) ListUsers(ctx context.Context) ([]User, error) {
	return s.ListUsersFunc(ctx)
}

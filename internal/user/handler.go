package user

import (
	"context"
	"net/http"
	"time"

	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
)

// Service is the user operations contract consumed by the handler and the
// auth service.
type Service interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUser(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type userData struct {
	ID        string    `json:"id,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type ListUsersResponse struct {
	Users []userData `json:"users"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	payload := newListUsersResponse(users)
	web.RespondOK(w, nil, payload)
}

func newListUsersResponse(users []User) *ListUsersResponse {
	data := make([]userData, 0, len(users))
	for _, u := range users {
		data = append(data, userData{
			ID:        u.ID,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}

	return &ListUsersResponse{
		Users: data,
	}
}

package port

import (
	"context"
	"errors"

	"taipeiTripWeb/internal/modules/auth/domain"
)

var (
	// ErrBadCredentials covers any non-2xx login response; the UI shows the
	// inline failure banner without distinguishing further.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrEmailTaken is the recognized registration conflict (400 with the
	// "Email already registered" detail payload).
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotAuthenticated uniformly covers 401, 404, and every other non-2xx
	// on the protected current-user fetch.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// UserGateway is the REST surface of the user endpoints.
type UserGateway interface {
	// Login issues the update-style credential check (PUT /api/user/auth).
	Login(ctx context.Context, email, password string) (domain.Session, error)
	// Register creates a user (POST /api/user).
	Register(ctx context.Context, name, email, password string) error
	// CurrentUser fetches the profile behind the bearer token (GET /api/user/auth).
	CurrentUser(ctx context.Context, token string) (domain.UserProfile, error)
}

package ports

import (
	"context"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
)

type AuthService interface {
	// Signup registers a photographer account and returns the new user id.
	Signup(ctx context.Context, name, email, password string) (string, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	id, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected user id, got empty")
	}

	user, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RolePhotographer {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), "Bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "Bobby", "bob@example.com", "other"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single user record, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	id, err := svc.Signup(context.Background(), "Carol", "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != id {
		t.Fatalf("expected user_id %s, got %v", id, claims["user_id"])
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), "Dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_TokenExpiry(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", -time.Hour, zerolog.Nop())
	if svc.tokenTTL != 24*time.Hour {
		t.Fatalf("expected default 24h TTL, got %v", svc.tokenTTL)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, name, email, password string) (string, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password string) (string, error) {
	return s.signupFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (string, error) {
			if name != "Alice" || email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return "user-1", nil
		},
	}
	h := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/signup", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "user-1" {
		t.Fatalf("expected user_id, got %v", resp["user_id"])
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (string, error) {
			return "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/signup", `{"name":"Bob","email":"bob@example.com","password":"pw"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already registered") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/signup", `{"name":"Bob","email":"not-an-email","password":"pw"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token123", &domain.User{
				ID:    "user-1",
				Name:  "Alice",
				Email: "alice@example.com",
				Role:  domain.RolePhotographer,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %v", resp["access_token"])
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("expected bearer token type, got %v", resp["token_type"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "user-1" || user["role"] != domain.RolePhotographer {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked into user payload")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"bad"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/login", "{")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

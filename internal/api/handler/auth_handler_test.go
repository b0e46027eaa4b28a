package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (string, error)
	loginFn    func(ctx context.Context, username, password string) (string, string, error)
	refreshFn  func(ctx context.Context, raw string) (string, string, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (string, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, raw string) (string, string, error) {
	return s.refreshFn(ctx, raw)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubAuthService) SeedAdmin(context.Context) error { return nil }

func newAuthContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, username, password string) (string, error) {
			if username != "alice" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "id-1", nil
		},
	})

	c, rec := newAuthContext(e, http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "id-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	})

	c, _ := newAuthContext(e, http.MethodPost, "/register", `{"username":"alice"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrUserExists
		},
	})

	c, _ := newAuthContext(e, http.MethodPost, "/register", `{"username":"alice","password":"pw2"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists passthrough, got %v", err)
	}
}

func TestAuthHandler_Login_ReturnsTokenAndRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, string, error) {
			return "tok", "user", nil
		},
	})

	c, rec := newAuthContext(e, http.MethodPost, "/login", `{"username":"alice","password":"pw1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "tok" || resp.Role != "user" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, string, error) {
			return "", "", domain.ErrInvalidCredentials
		},
	})

	c, _ := newAuthContext(e, http.MethodPost, "/login", `{"username":"alice","password":"bad"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestAuthHandler_Refresh_RequiresBearerHeader(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(context.Context, string) (string, string, error) {
			t.Fatalf("service should not be called")
			return "", "", nil
		},
	})

	c, _ := newAuthContext(e, http.MethodPost, "/refresh", "")
	err := h.Refresh(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Refresh_PassesRawToken(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(_ context.Context, raw string) (string, string, error) {
			if raw != "old-token" {
				t.Fatalf("unexpected raw token: %s", raw)
			}
			return "new-token", "admin", nil
		},
	})

	c, rec := newAuthContext(e, http.MethodPost, "/refresh", "")
	c.Request().Header.Set("Authorization", "Bearer old-token")

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "new-token" || resp.Role != "admin" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_ListUsers_OmitsVerifiers(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{{ID: "id-1", Username: "alice", PasswordHash: "hash", Role: "user"}}, nil
		},
	})

	c, rec := newAuthContext(e, http.MethodGet, "/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password verifier leaked: %s", rec.Body.String())
	}
	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 || users[0]["username"] != "alice" || users[0]["role"] != "user" {
		t.Fatalf("unexpected users payload: %+v", users)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/navihub/navihub/internal/api/middleware"
	"github.com/navihub/navihub/internal/core/domain"
	"github.com/navihub/navihub/internal/core/ports"
)

type stubUserService struct {
	users        []domain.User
	err          error
	gotCallerID  int64
	gotDeletedID int64
}

func (s *stubUserService) List(_ context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Create(_ context.Context, input ports.UserInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: 1, Username: input.Username, Email: input.Email, IsAdmin: input.IsAdmin}, nil
}

func (s *stubUserService) Update(_ context.Context, id int64, input ports.UserInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: id, Username: input.Username, Email: input.Email, IsAdmin: input.IsAdmin}, nil
}

func (s *stubUserService) Delete(_ context.Context, callerID, id int64) error {
	s.gotCallerID, s.gotDeletedID = callerID, id
	return s.err
}

func TestUserHandler_List_OmitsPasswordHash(t *testing.T) {
	svc := &stubUserService{users: []domain.User{
		{ID: 1, Username: "admin", Email: "admin@example.com", PasswordHash: "secret-hash", IsAdmin: true},
	}}
	h := NewUserHandler(svc)

	c, rec := newLinkContext(t, http.MethodGet, "/api/users/", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash leaked into response: %s", rec.Body.String())
	}

	var resp []userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 || resp[0].Username != "admin" || !resp[0].IsAdmin {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Create_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing username", `{"email":"a@example.com","password":"x"}`},
		{"missing email", `{"username":"a","password":"x"}`},
		{"invalid email", `{"username":"a","email":"not-an-email","password":"x"}`},
		{"missing password", `{"username":"a","email":"a@example.com"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newLinkContext(t, http.MethodPost, "/api/users/", tc.body)
			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestUserHandler_Create_Conflict(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrUsernameTaken})

	c, _ := newLinkContext(t, http.MethodPost, "/api/users/", `{"username":"admin","email":"a@example.com","password":"x"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserHandler_Delete_PassesCallerIdentity(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, rec := newLinkContext(t, http.MethodDelete, "/api/users/5", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: 1, Username: "root", IsAdmin: true})
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if svc.gotCallerID != 1 || svc.gotDeletedID != 5 {
		t.Fatalf("caller/target not forwarded: caller=%d target=%d", svc.gotCallerID, svc.gotDeletedID)
	}
	if !strings.Contains(rec.Body.String(), "user deleted") {
		t.Fatalf("missing confirmation message: %s", rec.Body.String())
	}
}

func TestUserHandler_Delete_Self(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrSelfDeletion})

	c, _ := newLinkContext(t, http.MethodDelete, "/api/users/1", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: 1, Username: "root", IsAdmin: true})
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
}

func TestUserHandler_Me(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, rec := newLinkContext(t, http.MethodGet, "/api/users/me", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: 3, Username: "carol", Email: "carol@example.com"})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != 3 || resp.Username != "carol" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Me_Unauthenticated(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newLinkContext(t, http.MethodGet, "/api/users/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

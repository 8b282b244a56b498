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

	"github.com/navihub/navihub/internal/core/domain"
	"github.com/navihub/navihub/internal/core/ports"
)

type stubLinkService struct {
	links []domain.Link
	err   error
}

func (s *stubLinkService) List(_ context.Context) ([]domain.Link, error) {
	return s.links, s.err
}

func (s *stubLinkService) Create(_ context.Context, input ports.LinkInput) (*domain.Link, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Link{
		ID:          1,
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Icon:        input.Icon,
		Group:       input.Group,
	}, nil
}

func (s *stubLinkService) Update(_ context.Context, id int64, input ports.LinkInput) (*domain.Link, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Link{ID: id, Name: input.Name, URL: input.URL}, nil
}

func (s *stubLinkService) Delete(_ context.Context, id int64) error {
	return s.err
}

func newLinkContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLinkHandler_List(t *testing.T) {
	svc := &stubLinkService{links: []domain.Link{
		{ID: 1, Name: "Docs", URL: "https://example.com", Group: "eng"},
		{ID: 2, Name: "Wiki", URL: "https://wiki.example.com"},
	}}
	h := NewLinkHandler(svc)

	c, rec := newLinkContext(t, http.MethodGet, "/api/links/", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []linkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 || resp[0].Name != "Docs" || resp[1].ID != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLinkHandler_Create(t *testing.T) {
	h := NewLinkHandler(&stubLinkService{})

	body := `{"name":"Docs","url":"https://example.com","description":"d","icon":"book","group":"eng"}`
	c, rec := newLinkContext(t, http.MethodPost, "/api/links/", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp linkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID == 0 || resp.Name != "Docs" || resp.Group != "eng" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLinkHandler_Create_MissingRequiredFields(t *testing.T) {
	h := NewLinkHandler(&stubLinkService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"url":"https://example.com"}`},
		{"missing url", `{"name":"Docs"}`},
		{"empty payload", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newLinkContext(t, http.MethodPost, "/api/links/", tc.body)
			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestLinkHandler_Update_NotFound(t *testing.T) {
	h := NewLinkHandler(&stubLinkService{err: domain.ErrLinkNotFound})

	c, _ := newLinkContext(t, http.MethodPut, "/api/links/99", `{"name":"Docs","url":"https://example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Update(c); !errors.Is(err, domain.ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
}

func TestLinkHandler_Update_NonNumericID(t *testing.T) {
	h := NewLinkHandler(&stubLinkService{})

	c, _ := newLinkContext(t, http.MethodPut, "/api/links/abc", `{"name":"Docs","url":"https://example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); !errors.Is(err, domain.ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound for non-numeric id, got %v", err)
	}
}

func TestLinkHandler_Delete(t *testing.T) {
	h := NewLinkHandler(&stubLinkService{})

	c, rec := newLinkContext(t, http.MethodDelete, "/api/links/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "link deleted") {
		t.Fatalf("missing confirmation message: %s", rec.Body.String())
	}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/domainpanel/backend/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation", domain.Validationf("email is required"), http.StatusBadRequest, "email is required"},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid or expired token"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"domain not found", domain.ErrDomainNotFound, http.StatusNotFound, "domain not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{"domain taken", domain.ErrDomainTaken, http.StatusConflict, "domain already exists for this user"},
		{"http error passthrough", echo.NewHTTPError(http.StatusForbidden, "insufficient role"), http.StatusForbidden, "insufficient role"},
		{"unknown", errors.New("pipe burst"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, rec.Code)
			}
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success {
				t.Fatalf("expected success=false")
			}
			if body.Message != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, body.Message)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected committed response untouched, got %d", rec.Code)
	}
}

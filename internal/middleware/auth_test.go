package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parserFunc func(token string) (entities.Principal, error)

func (f parserFunc) Parse(token string) (entities.Principal, error) { return f(token) }

func TestAuthenticate(t *testing.T) {
	parser := parserFunc(func(token string) (entities.Principal, error) {
		if token == "good" {
			return entities.Principal{UserID: "u1", Role: entities.RoleAdmin}, nil
		}
		return entities.Principal{}, errors.New("bad token")
	})

	var got entities.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFromContext(r.Context())
		require.True(t, ok)
		got = p
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.Authenticate(parser)(next)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer good", wantStatus: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusNoContent},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusNoContent {
				assert.Equal(t, "u1", got.UserID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireRole(entities.RoleSuperAdmin)(next)

	testCases := []struct {
		name       string
		principal  *entities.Principal
		wantStatus int
	}{
		{name: "super admin", principal: &entities.Principal{Role: entities.RoleSuperAdmin}, wantStatus: http.StatusOK},
		{name: "admin", principal: &entities.Principal{Role: entities.RoleAdmin}, wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.principal != nil {
				req = req.WithContext(middleware.WithPrincipal(req.Context(), *tc.principal))
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pedidos-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/pedidos-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	callerID = "11111111-1111-1111-1111-111111111111"
	userID   = "66666666-6666-6666-6666-666666666666"
)

func TestAuthHandler_Login(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"email":"admin@shop.ec","password":"secret-pass"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "admin@shop.ec", "secret-pass").Return(service.Session{
					Token:     "jwt",
					ExpiresAt: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
					User:      entities.User{ID: callerID, Email: "admin@shop.ec", Role: entities.RoleAdmin},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"jwt"`,
		},
		{
			name: "bad credentials",
			body: `{"email":"admin@shop.ec","password":"nope"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "admin@shop.ec", "nope").
					Return(service.Session{}, entities.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"invalid email or password"`,
		},
		{
			name:       "invalid email",
			body:       `{"email":"admin","password":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"email":"email"`,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"body":"invalid json"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			r := chi.NewRouter()
			handler.NewAuthHandler(discardLogger(), svc).Init(r)

			status, body := serve(t, r, http.MethodPost, "/auth/login", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestUserHandler(t *testing.T) {
	testCases := []struct {
		name         string
		role         entities.Role
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "me",
			role:   entities.RoleAdmin,
			method: http.MethodGet,
			target: "/auth/me",
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().GetUser(mock.Anything, callerID).
					Return(entities.User{ID: callerID, Email: "admin@shop.ec", Role: entities.RoleAdmin}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"rol":"ADMIN"`,
		},
		{
			name:   "me after user was deleted",
			role:   entities.RoleAdmin,
			method: http.MethodGet,
			target: "/auth/me",
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().GetUser(mock.Anything, callerID).Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin cannot list users",
			role:       entities.RoleAdmin,
			method:     http.MethodGet,
			target:     "/users",
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "super admin lists users",
			role:   entities.RoleSuperAdmin,
			method: http.MethodGet,
			target: "/users",
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().ListUsers(mock.Anything).
					Return([]entities.User{{ID: callerID, Email: "root@shop.ec", Role: entities.RoleSuperAdmin}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"email":"root@shop.ec"`,
		},
		{
			name:   "create user",
			role:   entities.RoleSuperAdmin,
			method: http.MethodPost,
			target: "/users",
			body:   `{"email":"new@shop.ec","password":"password1","rol":"ADMIN"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().CreateUser(mock.Anything, "new@shop.ec", "password1", entities.RoleAdmin).
					Return(entities.User{ID: userID, Email: "new@shop.ec", Role: entities.RoleAdmin}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"` + userID + `"`,
		},
		{
			name:       "create user with short password",
			role:       entities.RoleSuperAdmin,
			method:     http.MethodPost,
			target:     "/users",
			body:       `{"email":"new@shop.ec","password":"short","rol":"ADMIN"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"password":"min"`,
		},
		{
			name:   "delete self",
			role:   entities.RoleSuperAdmin,
			method: http.MethodDelete,
			target: "/users/" + callerID,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().DeleteUser(mock.Anything, mock.MatchedBy(func(p entities.Principal) bool {
					return p.UserID == callerID
				}), callerID).Return(entities.ErrCannotDeleteSelf).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"cannot delete the current user"`,
		},
		{
			name:   "delete other",
			role:   entities.RoleSuperAdmin,
			method: http.MethodDelete,
			target: "/users/" + userID,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().DeleteUser(mock.Anything, mock.Anything, userID).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			r := newRouter(handler.NewUserHandler(discardLogger(), svc), tc.role)

			status, body := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		db := mocks.NewMockPinger(t)
		db.EXPECT().Ping(mock.Anything).Return(nil).Once()
		r := chi.NewRouter()
		handler.NewHealthHandler(discardLogger(), db).Init(r)

		status, body := serve(t, r, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"status":"ok","database":"up"}`, body)
	})

	t.Run("down", func(t *testing.T) {
		db := mocks.NewMockPinger(t)
		db.EXPECT().Ping(mock.Anything).RunAndReturn(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return errors.New("connection refused")
		}).Once()
		r := chi.NewRouter()
		handler.NewHealthHandler(discardLogger(), db).Init(r)

		status, body := serve(t, r, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Contains(t, body, `"database":"down"`)
	})
}

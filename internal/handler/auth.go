package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/middleware"
	"github.com/SergeyBogomolovv/pedidos-service/internal/service"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (service.Session, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	CreateUser(ctx context.Context, email, password string, role entities.Role) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, caller entities.Principal, id string) error
}

// AuthHandler serves the public login endpoint.
type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
}

func NewAuthHandler(logger *slog.Logger, svc AuthService) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/auth/login", h.Login)
}

// Login exchanges credentials for a bearer token.
// @Summary      Login
// @Tags         auth
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	session, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, entities.ErrUnauthorized) {
		loginFailures.Inc()
	}
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      UserEntityToJSON(session.User),
	}, http.StatusOK)
}

// UserHandler serves the current user and, for super admins, user management.
type UserHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
}

func NewUserHandler(logger *slog.Logger, svc AuthService) *UserHandler {
	return &UserHandler{
		logger:   logger.With(slog.String("handler", "user")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Get("/auth/me", h.Me)

	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleSuperAdmin))
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Delete("/{id}", h.DeleteUser)
	})
}

// Me returns the authenticated user.
// @Summary      Current user
// @Tags         auth
// @Success      200  {object}  User
// @Failure      401  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
		return
	}

	user, err := h.svc.GetUser(r.Context(), principal.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		// token outlived its user
		utils.WriteError(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// ListUsers
// @Summary      List users
// @Tags         users
// @Success      200  {array}   User
// @Failure      403  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res := make([]User, 0, len(users))
	for _, u := range users {
		res = append(res, UserEntityToJSON(u))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateUser
// @Summary      Create user
// @Tags         users
// @Param        request  body      CreateUserRequest  true  "User"
// @Success      201  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Email taken"
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Email, req.Password, entities.Role(req.Rol))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// DeleteUser
// @Summary      Delete user
// @Tags         users
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Cannot delete the current user"
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	principal, _ := middleware.PrincipalFromContext(r.Context())
	if err := h.svc.DeleteUser(r.Context(), principal, id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

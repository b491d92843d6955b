package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u entities.User) error
	GetUser(ctx context.Context, id string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type TokenIssuer interface {
	Generate(user entities.User) (string, time.Time, error)
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type authService struct {
	logger *slog.Logger
	users  UserRepo
	tokens TokenIssuer
	cost   int
}

func NewAuthService(logger *slog.Logger, users UserRepo, tokens TokenIssuer) *authService {
	return &authService{
		logger: logger.With(slog.String("service", "auth")),
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return Session{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "failed login attempt", slog.String("user_id", user.ID))
		return Session{}, entities.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (entities.User, error) {
	return s.users.GetUser(ctx, id)
}

func (s *authService) CreateUser(ctx context.Context, email, password string, role entities.Role) (entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	s.logger.InfoContext(ctx, "user created", slog.String("user_id", user.ID), slog.String("role", string(role)))
	return user, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.users.ListUsers(ctx)
}

// DeleteUser removes a user other than the caller.
func (s *authService) DeleteUser(ctx context.Context, caller entities.Principal, id string) error {
	if caller.UserID == id {
		return entities.ErrCannotDeleteSelf
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user deleted", slog.String("user_id", id))
	return nil
}

// EnsureSuperAdmin creates the bootstrap super admin unless the email is
// already registered.
func (s *authService) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return fmt.Errorf("failed to look up super admin: %w", err)
	}

	_, err = s.CreateUser(ctx, email, password, entities.RoleSuperAdmin)
	if errors.Is(err, entities.ErrUserExists) {
		return nil
	}
	return err
}

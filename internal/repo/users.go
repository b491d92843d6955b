package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "email", "password_hash", "role", "created_at"}

func (r *postgresRepo) CreateUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns("id", "email", "password_hash", "role", "created_at").
		Values(u.ID, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err, "users_email_key") {
		return entities.ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *postgresRepo) getUser(ctx context.Context, where sq.Sqlizer) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(where).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) GetUser(ctx context.Context, id string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Expr("lower(email) = lower(?)", email))
}

func (r *postgresRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		OrderBy("created_at", "id").
		MustSql()

	var rows []User
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	users := make([]entities.User, 0, len(rows))
	for _, u := range rows {
		users = append(users, UserToEntity(u))
	}
	return users, nil
}

func (r *postgresRepo) DeleteUser(ctx context.Context, id string) error {
	query, args := r.qb.Delete("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}

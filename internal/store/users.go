package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

func (s *SQL) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.SelectContext(ctx, &users, "SELECT * FROM users ORDER BY id")
	return users, err
}

func (s *SQL) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, s.rebind("SELECT * FROM users WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks a user up case-insensitively.
func (s *SQL) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		s.rebind("SELECT * FROM users WHERE LOWER(email) = LOWER(?)"), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *SQL) SaveUser(ctx context.Context, user *model.User) error {
	query := s.rebind(`
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			password_hash = excluded.password_hash,
			role = excluded.role,
			is_active = excluded.is_active`)

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
	)
	return err
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
)

// Credential administration. These live on the Guard so the digest never has
// to leave this package.

// UpdateCredentials changes a user's email and, when newPassword is
// non-empty, re-digests the password. The whole user row is written back.
func (g *Guard) UpdateCredentials(ctx context.Context, userID, newEmail, newPassword string) error {
	user, err := g.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if newEmail != "" {
		user.Email = newEmail
	}
	if newPassword != "" {
		user.PasswordHash = Digest(newPassword)
	}
	if err := g.store.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// SetActive flips an affiliate's active flag. Inactive affiliates keep
// accruing clicks and markers; only login and signup honor the flag.
func (g *Guard) SetActive(ctx context.Context, userID string, active bool) error {
	user, err := g.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	return g.store.SaveUser(ctx, user)
}

// CreateAffiliate registers an affiliate on behalf of an admin, bypassing the
// AllowSignup setting but still refusing duplicate emails.
func (g *Guard) CreateAffiliate(ctx context.Context, email, password string) (*model.User, error) {
	if _, err := g.store.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	id, err := generateAffiliateID()
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: Digest(password),
		Role:         model.RoleAffiliate,
		IsActive:     true,
	}
	if err := g.store.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	result := user.Sanitized()
	return &result, nil
}

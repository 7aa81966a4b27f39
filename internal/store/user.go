package store

import (
	"context"
	"strings"

	"service-booking-api/internal/model"
)

// NormalizeEmail is the form a user email is keyed by.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// InsertUser adds u, failing with ErrConflict when the email is registered.
func (s *Store) InsertUser(ctx context.Context, u *model.User) error {
	u.Email = NormalizeEmail(u.Email)
	return s.users.Append(ctx, *u)
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.users.Get(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// DeleteUser leaves the user's bookings in place.
func (s *Store) DeleteUser(ctx context.Context, email string) error {
	return s.users.RemoveKey(ctx, NormalizeEmail(email))
}

package store

import (
	"context"
	"time"

	"service-booking-api/internal/model"
)

// CreateSession stores a session keyed by the hash of its secret.
func (s *Store) CreateSession(ctx context.Context, idHash, email string, ttl time.Duration) (*model.Session, error) {
	now := time.Now().UTC()
	sess := model.Session{
		ID:        idHash,
		Email:     NormalizeEmail(email),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.sessions.Append(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// GetSession returns a live session. Expired ones read as ErrNotFound.
func (s *Store) GetSession(ctx context.Context, idHash string) (*model.Session, error) {
	sess, err := s.sessions.Get(ctx, idHash)
	if err != nil {
		return nil, err
	}
	if sess.Expired(time.Now()) {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *Store) DeleteSession(ctx context.Context, idHash string) error {
	return s.sessions.RemoveKey(ctx, idHash)
}

// DeleteUserSessions ends every session of email (logout everywhere).
func (s *Store) DeleteUserSessions(ctx context.Context, email string) (int, error) {
	email = NormalizeEmail(email)
	return s.sessions.Remove(ctx, func(sess model.Session) bool {
		return sess.Email == email
	})
}

// PurgeExpiredSessions drops sessions whose expiry is at or before now.
func (s *Store) PurgeExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	return s.sessions.Remove(ctx, func(sess model.Session) bool {
		return sess.Expired(now)
	})
}

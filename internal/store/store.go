package store

import (
	"context"

	"go.uber.org/zap"

	"service-booking-api/internal/model"
)

const (
	CollUsers    = "users"
	CollBookings = "bookings"
	CollSessions = "sessions"
)

type Store struct {
	be       Backend
	users    *Collection[model.User]
	bookings *Collection[model.Booking]
	sessions *Collection[model.Session]
}

func New(be Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("store")
	return &Store{
		be:       be,
		users:    NewCollection(be, CollUsers, func(u model.User) string { return u.Email }, log),
		bookings: NewCollection(be, CollBookings, func(b model.Booking) string { return b.BookingID }, log),
		sessions: NewCollection(be, CollSessions, func(s model.Session) string { return s.ID }, log),
	}
}

// Open builds a Store on the backend named by driver.
func Open(ctx context.Context, driver, dsn string, log *zap.Logger) (*Store, error) {
	be, err := OpenBackend(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	return New(be, log), nil
}

func (s *Store) Close() error { return s.be.Close() }

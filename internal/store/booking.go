package store

import (
	"context"
	"errors"

	"service-booking-api/internal/model"
)

func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	return s.bookings.Append(ctx, *b)
}

func (s *Store) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return s.bookings.List(ctx)
}

// BookingsByEmail returns the bookings made with email, in creation order.
func (s *Store) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	email = NormalizeEmail(email)
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, b := range all {
		if NormalizeEmail(b.UserEmail) == email {
			out = append(out, b)
		}
	}
	return out, nil
}

// ReplaceBooking swaps the whole record stored under b.BookingID.
func (s *Store) ReplaceBooking(ctx context.Context, b *model.Booking) error {
	return s.bookings.Replace(ctx, *b)
}

// CancelBooking removes booking id if it belongs to email.
// Bookings of other users look absent.
func (s *Store) CancelBooking(ctx context.Context, id, email string) error {
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	if NormalizeEmail(b.UserEmail) != NormalizeEmail(email) {
		return ErrNotFound
	}
	err = s.bookings.RemoveKey(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return err
}

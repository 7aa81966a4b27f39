package controller

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"service-booking-api/internal/model"
	"service-booking-api/internal/notify"
	"service-booking-api/internal/store"
	"service-booking-api/internal/validate"
)

const (
	msgBookingName    = "Please enter a valid name (at least 2 characters)"
	msgBookingPhone   = "Please enter a valid phone number (10 digits)"
	msgFutureDate     = "Please select a future date"
	msgAddress        = "Please enter a complete address"
	msgCancelled      = "Booking cancelled successfully"
	msgCancelFailed   = "Error cancelling booking"
	msgBookingMissing = "Booking not found"
)

// how many fresh ids a create tries before giving up
const bookingIDAttempts = 3

type BookingInput struct {
	ServiceName     string
	CustomerName    string
	Email           string
	Phone           string
	PreferredDate   string
	PreferredTime   string
	Address         string
	AdditionalNotes string
}

type RescheduleInput struct {
	BookingID     string
	PreferredDate string
	PreferredTime string
}

// BookingView is a booking as the dashboard shows it.
type BookingView struct {
	model.Booking
	Upcoming bool `json:"upcoming"`
}

type BookingResult struct {
	Booking  model.Booking
	Upcoming bool
	Notice   notify.Notice
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newBookingID is BK, the unix millis of now, then 9 random base-36 characters.
func newBookingID(now time.Time) (string, error) {
	b := make([]byte, 9)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}
	return "BK" + strconv.FormatInt(now.UnixMilli(), 10) + string(b), nil
}

// futureDay reports whether s is a YYYY-MM-DD day that is today or later.
func (c *Controller) futureDay(s string) bool {
	now := c.clock()
	d, err := time.ParseInLocation(model.DateLayout, s, now.Location())
	if err != nil {
		return false
	}
	return validate.NotPast(d, now)
}

func (c *Controller) CreateBooking(ctx context.Context, in BookingInput) (*BookingResult, error) {
	aud := Audience(ctx)
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Address = strings.TrimSpace(in.Address)
	email := store.NormalizeEmail(in.Email)

	a, err := c.start(aud, FormBooking,
		validate.Rule{Field: "form", Message: msgRequiredAll, OK: func() bool {
			return validate.Required(in.ServiceName, in.CustomerName, email, in.Phone,
				in.PreferredDate, in.PreferredTime, in.Address)
		}},
		validate.Rule{Field: "customerName", Message: msgBookingName, OK: func() bool { return validate.Name(in.CustomerName) }},
		validate.Rule{Field: "customerEmail", Message: msgBadEmail, OK: func() bool { return c.emailOK(email) }},
		validate.Rule{Field: "customerPhone", Message: msgBookingPhone, OK: func() bool { return validate.Phone(in.Phone) }},
		validate.Rule{Field: "preferredDate", Message: msgFutureDate, OK: func() bool { return c.futureDay(in.PreferredDate) }},
		validate.Rule{Field: "customerAddress", Message: msgAddress, OK: func() bool { return validate.Address(in.Address) }},
	)
	if err != nil {
		return nil, err
	}

	return submit(ctx, c, a, "create booking", func(ctx context.Context) (*BookingResult, error) {
		now := c.clock()
		b := model.Booking{
			ServiceName:     in.ServiceName,
			CustomerName:    in.CustomerName,
			UserEmail:       email,
			CustomerPhone:   strings.TrimSpace(in.Phone),
			PreferredDate:   in.PreferredDate,
			PreferredTime:   strings.TrimSpace(in.PreferredTime),
			CustomerAddress: in.Address,
			AdditionalNotes: strings.TrimSpace(in.AdditionalNotes),
			BookingDate:     now.Format(model.DisplayLayout),
			CreatedAt:       now.UTC(),
		}
		var err error
		for i := 0; i < bookingIDAttempts; i++ {
			if b.BookingID, err = newBookingID(now); err != nil {
				return nil, err
			}
			if err = c.store.CreateBooking(ctx, &b); !errors.Is(err, store.ErrConflict) {
				break
			}
		}
		if err != nil {
			return nil, err
		}
		return &BookingResult{
			Booking:  b,
			Upcoming: b.Upcoming(now),
			Notice:   c.notes.Modal(aud, notify.Success, confirmation(b, now.Location())),
		}, nil
	})
}

func confirmation(b model.Booking, loc *time.Location) string {
	day := b.PreferredDate
	if d, err := time.ParseInLocation(model.DateLayout, b.PreferredDate, loc); err == nil {
		day = d.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("%s has been successfully booked! Scheduled for %s at %s. "+
		"A confirmation email will be sent shortly. Our team will contact you soon.",
		b.ServiceName, day, b.PreferredTime)
}

// ListBookings returns the caller's bookings, latest preferred date first.
func (c *Controller) ListBookings(ctx context.Context) ([]BookingView, error) {
	sess, err := c.requireSession(ctx, "")
	if err != nil {
		return nil, err
	}
	list, err := c.store.BookingsByEmail(ctx, sess.Email)
	if err != nil {
		return nil, c.failure(Audience(ctx), "", "list bookings", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].PreferredDate != list[j].PreferredDate {
			return list[i].PreferredDate > list[j].PreferredDate
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	now := c.clock()
	out := make([]BookingView, len(list))
	for i, b := range list {
		out[i] = BookingView{Booking: b, Upcoming: b.Upcoming(now)}
	}
	return out, nil
}

// CancelBooking deletes one of the caller's own bookings.
func (c *Controller) CancelBooking(ctx context.Context, id string) (notify.Notice, error) {
	aud := Audience(ctx)
	sess, err := c.requireSession(ctx, FormCancel)
	if err != nil {
		return notify.Notice{}, err
	}
	a, err := c.start(aud, FormCancel,
		validate.Rule{Field: "bookingId", Message: msgCancelFailed, OK: func() bool { return validate.Required(id) }},
	)
	if err != nil {
		return notify.Notice{}, err
	}

	err = c.store.CancelBooking(ctx, id, sess.Email)
	if errors.Is(err, store.ErrNotFound) {
		a.finish(Failed)
		return notify.Notice{}, c.fail(aud, FormCancel, &Failure{Code: CodeNotFound, Field: "bookingId", Message: msgCancelFailed, Err: err})
	}
	if err != nil {
		a.finish(Failed)
		return notify.Notice{}, c.failure(aud, FormCancel, "cancel booking", err)
	}
	a.finish(Succeeded)
	return c.notes.Toast(aud, notify.Success, msgCancelled), nil
}

// RescheduleBooking moves one of the caller's bookings to a new slot by
// replacing the whole record.
func (c *Controller) RescheduleBooking(ctx context.Context, in RescheduleInput) (*BookingResult, error) {
	aud := Audience(ctx)
	sess, err := c.requireSession(ctx, FormReschedule)
	if err != nil {
		return nil, err
	}
	in.PreferredTime = strings.TrimSpace(in.PreferredTime)

	a, err := c.start(aud, FormReschedule,
		validate.Rule{Field: "form", Message: msgRequiredAll, OK: func() bool {
			return validate.Required(in.BookingID, in.PreferredDate, in.PreferredTime)
		}},
		validate.Rule{Field: "preferredDate", Message: msgFutureDate, OK: func() bool { return c.futureDay(in.PreferredDate) }},
	)
	if err != nil {
		return nil, err
	}

	return submit(ctx, c, a, "reschedule booking", func(ctx context.Context) (*BookingResult, error) {
		b, err := c.store.GetBooking(ctx, in.BookingID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && b.UserEmail != sess.Email) {
			return nil, &Failure{Code: CodeNotFound, Field: "bookingId", Message: msgBookingMissing}
		}
		if err != nil {
			return nil, err
		}
		b.PreferredDate = in.PreferredDate
		b.PreferredTime = in.PreferredTime
		if err := c.store.ReplaceBooking(ctx, b); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, &Failure{Code: CodeNotFound, Field: "bookingId", Message: msgBookingMissing, Err: err}
			}
			return nil, err
		}
		msg := fmt.Sprintf("Booking %s rescheduled to %s at %s", b.BookingID, b.PreferredDate, b.PreferredTime)
		return &BookingResult{
			Booking:  *b,
			Upcoming: b.Upcoming(c.clock()),
			Notice:   c.notes.Toast(aud, notify.Success, msg),
		}, nil
	})
}

package model

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Booking.UserEmail is a soft reference to User.Email; nothing cascades.
type Booking struct {
	BookingID       string    `json:"bookingId"`
	ServiceName     string    `json:"serviceName"`
	CustomerName    string    `json:"customerName"`
	UserEmail       string    `json:"userEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	PreferredDate   string    `json:"preferredDate"`
	PreferredTime   string    `json:"preferredTime"`
	CustomerAddress string    `json:"customerAddress"`
	AdditionalNotes string    `json:"additionalNotes,omitempty"`
	BookingDate     string    `json:"bookingDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DateLayout is the wire format of PreferredDate.
const DateLayout = "2006-01-02"

// DisplayLayout is the format of BookingDate.
const DisplayLayout = "01/02/2006"

// timeLayouts are the accepted spellings of PreferredTime.
var timeLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM"}

// Upcoming reports whether the preferred slot is still ahead of now. A
// time of day that does not parse counts as the end of the preferred day.
func (b Booking) Upcoming(now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, b.PreferredDate, now.Location())
	if err != nil {
		return false
	}
	slot := d.AddDate(0, 0, 1)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, b.PreferredTime); err == nil {
			slot = time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, d.Location())
			break
		}
	}
	return slot.After(now)
}

type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Service struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"`
	Includes    string `json:"includes" yaml:"includes"`
}

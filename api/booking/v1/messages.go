package bookingv1

import "time"

type Empty struct{}

func (*Empty) MarshalWire() []byte { return nil }

func (*Empty) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(field) error { return nil })
}

type Notice struct {
	Id        string
	Kind      string
	Message   string
	Blocking  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (m *Notice) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Kind)
	b = appendString(b, 3, m.Message)
	b = appendBool(b, 4, m.Blocking)
	b = appendTime(b, 5, m.CreatedAt)
	b = appendTime(b, 6, m.ExpiresAt)
	return b
}

func (m *Notice) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Id, err = f.str()
		case 2:
			m.Kind, err = f.str()
		case 3:
			m.Message, err = f.str()
		case 4:
			m.Blocking = f.bool()
		case 5:
			m.CreatedAt, err = parseTime(f.bytes)
		case 6:
			m.ExpiresAt, err = parseTime(f.bytes)
		}
		return err
	})
}

type User struct {
	Id        string
	Name      string
	Email     string
	CreatedAt time.Time
}

func (m *User) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Email)
	b = appendTime(b, 4, m.CreatedAt)
	return b
}

func (m *User) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Id, err = f.str()
		case 2:
			m.Name, err = f.str()
		case 3:
			m.Email, err = f.str()
		case 4:
			m.CreatedAt, err = parseTime(f.bytes)
		}
		return err
	})
}

type Booking struct {
	BookingId       string
	ServiceName     string
	CustomerName    string
	UserEmail       string
	CustomerPhone   string
	PreferredDate   string
	PreferredTime   string
	CustomerAddress string
	AdditionalNotes string
	BookingDate     string
	CreatedAt       time.Time
	Upcoming        bool
}

func (m *Booking) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.BookingId)
	b = appendString(b, 2, m.ServiceName)
	b = appendString(b, 3, m.CustomerName)
	b = appendString(b, 4, m.UserEmail)
	b = appendString(b, 5, m.CustomerPhone)
	b = appendString(b, 6, m.PreferredDate)
	b = appendString(b, 7, m.PreferredTime)
	b = appendString(b, 8, m.CustomerAddress)
	b = appendString(b, 9, m.AdditionalNotes)
	b = appendString(b, 10, m.BookingDate)
	b = appendTime(b, 11, m.CreatedAt)
	b = appendBool(b, 12, m.Upcoming)
	return b
}

func (m *Booking) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.BookingId, err = f.str()
		case 2:
			m.ServiceName, err = f.str()
		case 3:
			m.CustomerName, err = f.str()
		case 4:
			m.UserEmail, err = f.str()
		case 5:
			m.CustomerPhone, err = f.str()
		case 6:
			m.PreferredDate, err = f.str()
		case 7:
			m.PreferredTime, err = f.str()
		case 8:
			m.CustomerAddress, err = f.str()
		case 9:
			m.AdditionalNotes, err = f.str()
		case 10:
			m.BookingDate, err = f.str()
		case 11:
			m.CreatedAt, err = parseTime(f.bytes)
		case 12:
			m.Upcoming = f.bool()
		}
		return err
	})
}

type Service struct {
	Id          int64
	Name        string
	Description string
	Duration    string
	Includes    string
}

func (m *Service) MarshalWire() []byte {
	var b []byte
	b = appendInt(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Description)
	b = appendString(b, 4, m.Duration)
	b = appendString(b, 5, m.Includes)
	return b
}

func (m *Service) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Id = int64(f.varint)
		case 2:
			m.Name, err = f.str()
		case 3:
			m.Description, err = f.str()
		case 4:
			m.Duration, err = f.str()
		case 5:
			m.Includes, err = f.str()
		}
		return err
	})
}

type SignUpRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

func (m *SignUpRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Email)
	b = appendString(b, 3, m.Password)
	b = appendString(b, 4, m.ConfirmPassword)
	b = appendBool(b, 5, m.AcceptTerms)
	return b
}

func (m *SignUpRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Name, err = f.str()
		case 2:
			m.Email, err = f.str()
		case 3:
			m.Password, err = f.str()
		case 4:
			m.ConfirmPassword, err = f.str()
		case 5:
			m.AcceptTerms = f.bool()
		}
		return err
	})
}

type SignInRequest struct {
	Email    string
	Password string
}

func (m *SignInRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Password)
	return b
}

func (m *SignInRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Email, err = f.str()
		case 2:
			m.Password, err = f.str()
		}
		return err
	})
}

type AuthResponse struct {
	Token     string
	User      *User
	ExpiresAt time.Time
	Notice    *Notice
}

func (m *AuthResponse) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Token)
	if m.User != nil {
		b = appendMessage(b, 2, m.User)
	}
	b = appendTime(b, 3, m.ExpiresAt)
	if m.Notice != nil {
		b = appendMessage(b, 4, m.Notice)
	}
	return b
}

func (m *AuthResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Token, err = f.str()
		case 2:
			m.User = &User{}
			err = m.User.UnmarshalWire(f.bytes)
		case 3:
			m.ExpiresAt, err = parseTime(f.bytes)
		case 4:
			m.Notice = &Notice{}
			err = m.Notice.UnmarshalWire(f.bytes)
		}
		return err
	})
}

type NoticeResponse struct {
	Notice *Notice
}

func (m *NoticeResponse) MarshalWire() []byte {
	if m.Notice == nil {
		return nil
	}
	return appendMessage(nil, 1, m.Notice)
}

func (m *NoticeResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		if f.num == 1 {
			m.Notice = &Notice{}
			return m.Notice.UnmarshalWire(f.bytes)
		}
		return nil
	})
}

type ForgotPasswordRequest struct {
	Email string
}

func (m *ForgotPasswordRequest) MarshalWire() []byte { return appendString(nil, 1, m.Email) }

func (m *ForgotPasswordRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		if f.num == 1 {
			m.Email, err = f.str()
		}
		return err
	})
}

type UserResponse struct {
	User *User
}

func (m *UserResponse) MarshalWire() []byte {
	if m.User == nil {
		return nil
	}
	return appendMessage(nil, 1, m.User)
}

func (m *UserResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		if f.num == 1 {
			m.User = &User{}
			return m.User.UnmarshalWire(f.bytes)
		}
		return nil
	})
}

type ListServicesResponse struct {
	Services []*Service
}

func (m *ListServicesResponse) MarshalWire() []byte {
	var b []byte
	for _, s := range m.Services {
		b = appendMessage(b, 1, s)
	}
	return b
}

func (m *ListServicesResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		s := &Service{}
		if err := s.UnmarshalWire(f.bytes); err != nil {
			return err
		}
		m.Services = append(m.Services, s)
		return nil
	})
}

type ServiceDetailsRequest struct {
	Name string
}

func (m *ServiceDetailsRequest) MarshalWire() []byte { return appendString(nil, 1, m.Name) }

func (m *ServiceDetailsRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		if f.num == 1 {
			m.Name, err = f.str()
		}
		return err
	})
}

type ServiceDetailsResponse struct {
	Service *Service
	Notice  *Notice
}

func (m *ServiceDetailsResponse) MarshalWire() []byte {
	var b []byte
	if m.Service != nil {
		b = appendMessage(b, 1, m.Service)
	}
	if m.Notice != nil {
		b = appendMessage(b, 2, m.Notice)
	}
	return b
}

func (m *ServiceDetailsResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		switch f.num {
		case 1:
			m.Service = &Service{}
			return m.Service.UnmarshalWire(f.bytes)
		case 2:
			m.Notice = &Notice{}
			return m.Notice.UnmarshalWire(f.bytes)
		}
		return nil
	})
}

type ContactRequest struct {
	Phone string
}

func (m *ContactRequest) MarshalWire() []byte { return appendString(nil, 1, m.Phone) }

func (m *ContactRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		if f.num == 1 {
			m.Phone, err = f.str()
		}
		return err
	})
}

type ContactResponse struct {
	Digits string
	Notice *Notice
}

func (m *ContactResponse) MarshalWire() []byte {
	b := appendString(nil, 1, m.Digits)
	if m.Notice != nil {
		b = appendMessage(b, 2, m.Notice)
	}
	return b
}

func (m *ContactResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Digits, err = f.str()
		case 2:
			m.Notice = &Notice{}
			return m.Notice.UnmarshalWire(f.bytes)
		}
		return err
	})
}

type CreateBookingRequest struct {
	ServiceName     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	PreferredDate   string
	PreferredTime   string
	CustomerAddress string
	AdditionalNotes string
}

func (m *CreateBookingRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.ServiceName)
	b = appendString(b, 2, m.CustomerName)
	b = appendString(b, 3, m.CustomerEmail)
	b = appendString(b, 4, m.CustomerPhone)
	b = appendString(b, 5, m.PreferredDate)
	b = appendString(b, 6, m.PreferredTime)
	b = appendString(b, 7, m.CustomerAddress)
	b = appendString(b, 8, m.AdditionalNotes)
	return b
}

func (m *CreateBookingRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.ServiceName, err = f.str()
		case 2:
			m.CustomerName, err = f.str()
		case 3:
			m.CustomerEmail, err = f.str()
		case 4:
			m.CustomerPhone, err = f.str()
		case 5:
			m.PreferredDate, err = f.str()
		case 6:
			m.PreferredTime, err = f.str()
		case 7:
			m.CustomerAddress, err = f.str()
		case 8:
			m.AdditionalNotes, err = f.str()
		}
		return err
	})
}

type BookingResponse struct {
	Booking *Booking
	Notice  *Notice
}

func (m *BookingResponse) MarshalWire() []byte {
	var b []byte
	if m.Booking != nil {
		b = appendMessage(b, 1, m.Booking)
	}
	if m.Notice != nil {
		b = appendMessage(b, 2, m.Notice)
	}
	return b
}

func (m *BookingResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		switch f.num {
		case 1:
			m.Booking = &Booking{}
			return m.Booking.UnmarshalWire(f.bytes)
		case 2:
			m.Notice = &Notice{}
			return m.Notice.UnmarshalWire(f.bytes)
		}
		return nil
	})
}

type ListBookingsResponse struct {
	Bookings []*Booking
}

func (m *ListBookingsResponse) MarshalWire() []byte {
	var b []byte
	for _, bk := range m.Bookings {
		b = appendMessage(b, 1, bk)
	}
	return b
}

func (m *ListBookingsResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		bk := &Booking{}
		if err := bk.UnmarshalWire(f.bytes); err != nil {
			return err
		}
		m.Bookings = append(m.Bookings, bk)
		return nil
	})
}

type CancelBookingRequest struct {
	BookingId string
}

func (m *CancelBookingRequest) MarshalWire() []byte { return appendString(nil, 1, m.BookingId) }

func (m *CancelBookingRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		if f.num == 1 {
			m.BookingId, err = f.str()
		}
		return err
	})
}

type RescheduleBookingRequest struct {
	BookingId     string
	PreferredDate string
	PreferredTime string
}

func (m *RescheduleBookingRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.BookingId)
	b = appendString(b, 2, m.PreferredDate)
	b = appendString(b, 3, m.PreferredTime)
	return b
}

func (m *RescheduleBookingRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.BookingId, err = f.str()
		case 2:
			m.PreferredDate, err = f.str()
		case 3:
			m.PreferredTime, err = f.str()
		}
		return err
	})
}

type ListNoticesResponse struct {
	Notices []*Notice
}

func (m *ListNoticesResponse) MarshalWire() []byte {
	var b []byte
	for _, n := range m.Notices {
		b = appendMessage(b, 1, n)
	}
	return b
}

func (m *ListNoticesResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		n := &Notice{}
		if err := n.UnmarshalWire(f.bytes); err != nil {
			return err
		}
		m.Notices = append(m.Notices, n)
		return nil
	})
}

type DismissNoticeRequest struct {
	Id string
}

func (m *DismissNoticeRequest) MarshalWire() []byte { return appendString(nil, 1, m.Id) }

func (m *DismissNoticeRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) (err error) {
		if f.num == 1 {
			m.Id, err = f.str()
		}
		return err
	})
}

type DismissNoticeResponse struct {
	Dismissed bool
}

func (m *DismissNoticeResponse) MarshalWire() []byte { return appendBool(nil, 1, m.Dismissed) }

func (m *DismissNoticeResponse) UnmarshalWire(b []byte) error {
	return consumeFields(b, func(f field) error {
		if f.num == 1 {
			m.Dismissed = f.bool()
		}
		return nil
	})
}

package rest

import (
	"time"

	"github.com/labstack/echo/v4"

	"service-booking-api/internal/controller"
	"service-booking-api/internal/model"
	"service-booking-api/internal/notify"
)

type signUpPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

type signInPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailPayload struct {
	Email string `json:"email"`
}

type phonePayload struct {
	Phone string `json:"phone"`
}

type bookingPayload struct {
	ServiceName     string `json:"serviceName"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	PreferredDate   string `json:"preferredDate"`
	PreferredTime   string `json:"preferredTime"`
	CustomerAddress string `json:"customerAddress"`
	AdditionalNotes string `json:"additionalNotes"`
}

type reschedulePayload struct {
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
}

// userView is a user without its password hash.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserView(u model.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

type authResponse struct {
	Token     string         `json:"token"`
	User      userView       `json:"user"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Notice    *notify.Notice `json:"notice,omitempty"`
}

type bookingResponse struct {
	Booking controller.BookingView `json:"booking"`
	Notice  *notify.Notice         `json:"notice,omitempty"`
}

type noticeResponse struct {
	Notice *notify.Notice `json:"notice,omitempty"`
}

func authBody(res *controller.AuthResult) authResponse {
	return authResponse{
		Token:     res.Token,
		User:      toUserView(res.User),
		ExpiresAt: res.Session.ExpiresAt,
		Notice:    notice(res.Notice),
	}
}

func bookingBody(res *controller.BookingResult) bookingResponse {
	return bookingResponse{
		Booking: controller.BookingView{Booking: res.Booking, Upcoming: res.Upcoming},
		Notice:  notice(res.Notice),
	}
}

// ----- account -----

func (s *Server) signUp(c echo.Context) error {
	var p signUpPayload
	if err := c.Bind(&p); err != nil {
		return err
	}
	res, err := s.ctl.SignUp(c.Request().Context(), controller.SignUpInput{
		Name:            p.Name,
		Email:           p.Email,
		Password:        p.Password,
		ConfirmPassword: p.ConfirmPassword,
		AcceptTerms:     p.AcceptTerms,
	})
	if err != nil {
		return s.failWith(c, err)
	}
	return created(c, authBody(res))
}

func (s *Server) signIn(c echo.Context) error {
	var p signInPayload
	if err := c.Bind(&p); err != nil {
		return err
	}
	res, err := s.ctl.SignIn(c.Request().Context(), controller.SignInInput{Email: p.Email, Password: p.Password})
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, authBody(res))
}

func (s *Server) logout(c echo.Context) error {
	n, err := s.ctl.Logout(c.Request().Context())
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, noticeResponse{Notice: notice(n)})
}

func (s *Server) logoutAll(c echo.Context) error {
	n, err := s.ctl.LogoutAll(c.Request().Context())
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, noticeResponse{Notice: notice(n)})
}

func (s *Server) forgotPassword(c echo.Context) error {
	var p emailPayload
	if err := c.Bind(&p); err != nil {
		return err
	}
	n, err := s.ctl.ForgotPassword(c.Request().Context(), p.Email)
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, noticeResponse{Notice: notice(n)})
}

func (s *Server) profile(c echo.Context) error {
	u, err := s.ctl.Profile(c.Request().Context())
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, map[string]interface{}{"user": toUserView(*u)})
}

// ----- bookings -----

func (s *Server) createBooking(c echo.Context) error {
	var p bookingPayload
	if err := c.Bind(&p); err != nil {
		return err
	}
	res, err := s.ctl.CreateBooking(c.Request().Context(), controller.BookingInput{
		ServiceName:     p.ServiceName,
		CustomerName:    p.CustomerName,
		Email:           p.CustomerEmail,
		Phone:           p.CustomerPhone,
		PreferredDate:   p.PreferredDate,
		PreferredTime:   p.PreferredTime,
		Address:         p.CustomerAddress,
		AdditionalNotes: p.AdditionalNotes,
	})
	if err != nil {
		return s.failWith(c, err)
	}
	return created(c, bookingBody(res))
}

func (s *Server) listBookings(c echo.Context) error {
	list, err := s.ctl.ListBookings(c.Request().Context())
	if err != nil {
		return s.failWith(c, err)
	}
	if list == nil {
		list = []controller.BookingView{}
	}
	return ok(c, map[string]interface{}{"bookings": list})
}

func (s *Server) cancelBooking(c echo.Context) error {
	n, err := s.ctl.CancelBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, map[string]interface{}{"deleted": true, "notice": notice(n)})
}

func (s *Server) rescheduleBooking(c echo.Context) error {
	var p reschedulePayload
	if err := c.Bind(&p); err != nil {
		return err
	}
	res, err := s.ctl.RescheduleBooking(c.Request().Context(), controller.RescheduleInput{
		BookingID:     c.Param("id"),
		PreferredDate: p.PreferredDate,
		PreferredTime: p.PreferredTime,
	})
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, bookingBody(res))
}

// ----- catalog and notices -----

func (s *Server) listServices(c echo.Context) error {
	return ok(c, map[string]interface{}{"services": s.ctl.Services()})
}

func (s *Server) serviceDetails(c echo.Context) error {
	svc, n := s.ctl.ServiceDetails(c.Request().Context(), c.Param("name"))
	return ok(c, map[string]interface{}{"service": svc, "notice": notice(n)})
}

func (s *Server) contact(c echo.Context) error {
	var p phonePayload
	if err := c.Bind(&p); err != nil {
		return err
	}
	digits, n, err := s.ctl.Contact(c.Request().Context(), p.Phone)
	if err != nil {
		return s.failWith(c, err)
	}
	return ok(c, map[string]interface{}{"digits": digits, "notice": notice(n)})
}

func (s *Server) listNotices(c echo.Context) error {
	list := s.ctl.Notices(c.Request().Context())
	if list == nil {
		list = []notify.Notice{}
	}
	return ok(c, map[string]interface{}{"notices": list})
}

func (s *Server) dismissNotice(c echo.Context) error {
	return ok(c, map[string]interface{}{"dismissed": s.ctl.DismissNotice(c.Request().Context(), c.Param("id"))})
}

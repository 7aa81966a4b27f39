package handler_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "service-booking-api/api/booking/v1"
	"service-booking-api/internal/catalog"
	"service-booking-api/internal/controller"
	"service-booking-api/internal/handler"
	"service-booking-api/internal/notify"
	"service-booking-api/internal/store"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type env struct {
	h   *handler.Handler
	ctl *controller.Controller
}

func setup(t *testing.T) *env {
	t.Helper()
	st := store.New(store.NewMemory(), nil)
	t.Cleanup(func() { st.Close() })
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	ctl := controller.New(st, notify.New(time.Hour, nil), cat, "test-secret",
		controller.WithLatency(0),
		controller.WithLocation(time.UTC),
		controller.WithClock(func() time.Time { return now }),
	)
	return &env{h: handler.New(ctl, nil), ctl: ctl}
}

func tab() context.Context {
	return controller.WithClient(context.Background(), uuid.New().String())
}

// signUp registers a fresh user and returns a context carrying its session.
func (e *env) signUp(t *testing.T) (context.Context, string) {
	t.Helper()
	email := fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])
	ctx := tab()
	res, err := e.h.SignUp(ctx, &pb.SignUpRequest{
		Name: "Test User", Email: email, Password: "testpass123", ConfirmPassword: "testpass123", AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	sess, err := e.ctl.Authenticate(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	return controller.WithSession(ctx, sess), email
}

func bookingReq(email string) *pb.CreateBookingRequest {
	return &pb.CreateBookingRequest{
		ServiceName:     "House Cleaning",
		CustomerName:    "Test User",
		CustomerEmail:   email,
		CustomerPhone:   "555-123-4567",
		PreferredDate:   "2026-03-12",
		PreferredTime:   "10:00",
		CustomerAddress: "12 Long Street, Springfield",
	}
}

func codeOf(err error) codes.Code {
	s, _ := status.FromError(err)
	return s.Code()
}

// ----- account -----

func TestSignUp(t *testing.T) {
	e := setup(t)

	res, err := e.h.SignUp(tab(), &pb.SignUpRequest{
		Name: "Ann Lee", Email: "Ann@Example.com", Password: "secret1", ConfirmPassword: "secret1", AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if res.Token == "" {
		t.Fatal("empty token")
	}
	if res.User.Email != "ann@example.com" {
		t.Errorf("email not normalized: %s", res.User.Email)
	}
	if res.Notice == nil || res.Notice.Message != "Account created successfully! Welcome, Ann Lee!" {
		t.Errorf("unexpected notice: %+v", res.Notice)
	}
	if !res.Notice.Blocking {
		t.Error("sign-up outcome should be a modal")
	}
}

func TestSignUpValidation(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name string
		req  *pb.SignUpRequest
		msg  string
	}{
		{"empty", &pb.SignUpRequest{}, "Please fill in all fields"},
		{"short name", &pb.SignUpRequest{Name: "A", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", AcceptTerms: true}, "Name must be at least 2 characters"},
		{"bad email", &pb.SignUpRequest{Name: "Ann", Email: "nope", Password: "secret1", ConfirmPassword: "secret1", AcceptTerms: true}, "Please enter a valid email address"},
		{"short password", &pb.SignUpRequest{Name: "Ann", Email: "a@b.co", Password: "12345", ConfirmPassword: "12345", AcceptTerms: true}, "Password must be at least 6 characters"},
		{"mismatch", &pb.SignUpRequest{Name: "Ann", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2", AcceptTerms: true}, "Passwords do not match"},
		{"terms", &pb.SignUpRequest{Name: "Ann", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}, "You must agree to the Terms & Conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.h.SignUp(tab(), tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			s, _ := status.FromError(err)
			if s.Code() != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", s.Code())
			}
			if s.Message() != tt.msg {
				t.Errorf("expected %q, got %q", tt.msg, s.Message())
			}
		})
	}
}

func TestSignUpDuplicate(t *testing.T) {
	e := setup(t)
	_, email := e.signUp(t)

	_, err := e.h.SignUp(tab(), &pb.SignUpRequest{
		Name: "Second", Email: email, Password: "testpass123", ConfirmPassword: "testpass123", AcceptTerms: true,
	})
	if codeOf(err) != codes.AlreadyExists {
		t.Errorf("expected AlreadyExists, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	e := setup(t)
	_, email := e.signUp(t)

	res, err := e.h.SignIn(tab(), &pb.SignInRequest{Email: email, Password: "testpass123"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if res.User.Name != "Test User" {
		t.Errorf("expected name 'Test User', got '%s'", res.User.Name)
	}
	if res.Notice.Message != "Welcome back, "+email+"!" {
		t.Errorf("unexpected notice: %s", res.Notice.Message)
	}
}

func TestSignInFailures(t *testing.T) {
	e := setup(t)
	_, email := e.signUp(t)

	tests := []struct {
		name string
		req  *pb.SignInRequest
		code codes.Code
	}{
		{"wrong password", &pb.SignInRequest{Email: email, Password: "wrongpassword"}, codes.Unauthenticated},
		{"unknown user", &pb.SignInRequest{Email: "nobody@nowhere.com", Password: "testpass123"}, codes.Unauthenticated},
		{"empty", &pb.SignInRequest{}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.h.SignIn(tab(), tt.req); codeOf(err) != tt.code {
				t.Errorf("expected %v, got %v", tt.code, err)
			}
		})
	}
}

func TestLogoutEndsSession(t *testing.T) {
	e := setup(t)
	res, err := e.h.SignUp(tab(), &pb.SignUpRequest{
		Name: "Test User", Email: "logout@test.com", Password: "testpass123", ConfirmPassword: "testpass123", AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	sess, err := e.ctl.Authenticate(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	lr, err := e.h.Logout(controller.WithSession(tab(), sess), &pb.Empty{})
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if lr.Notice.Message != "You have been logged out" {
		t.Errorf("unexpected notice: %s", lr.Notice.Message)
	}
	if _, err := e.ctl.Authenticate(context.Background(), res.Token); controller.CodeOf(err) != controller.CodeUnauthenticated {
		t.Errorf("token still valid after logout: %v", err)
	}
	if _, err := e.h.Logout(tab(), &pb.Empty{}); codeOf(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated without a session, got %v", err)
	}
}

func TestLogoutAllEndsEverySession(t *testing.T) {
	e := setup(t)
	first, err := e.h.SignUp(tab(), &pb.SignUpRequest{
		Name: "Test User", Email: "everywhere@test.com", Password: "testpass123", ConfirmPassword: "testpass123", AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	second, err := e.h.SignIn(tab(), &pb.SignInRequest{Email: "everywhere@test.com", Password: "testpass123"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	other, err := e.h.SignUp(tab(), &pb.SignUpRequest{
		Name: "Other User", Email: "other@test.com", Password: "testpass123", ConfirmPassword: "testpass123", AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("sign up other: %v", err)
	}

	sess, err := e.ctl.Authenticate(context.Background(), first.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	lr, err := e.h.LogoutAll(controller.WithSession(tab(), sess), &pb.Empty{})
	if err != nil {
		t.Fatalf("logout all: %v", err)
	}
	if lr.Notice.Message != "You have been logged out on every device" {
		t.Errorf("unexpected notice: %s", lr.Notice.Message)
	}
	for _, tok := range []string{first.Token, second.Token} {
		if _, err := e.ctl.Authenticate(context.Background(), tok); err == nil {
			t.Error("token still valid after logout all")
		}
	}
	if _, err := e.ctl.Authenticate(context.Background(), other.Token); err != nil {
		t.Errorf("another account was logged out: %v", err)
	}
}

func TestForgotPassword(t *testing.T) {
	e := setup(t)

	res, err := e.h.ForgotPassword(tab(), &pb.ForgotPasswordRequest{Email: "ann@example.com"})
	if err != nil {
		t.Fatalf("forgot: %v", err)
	}
	if res.Notice.Message != "Password reset link sent to ann@example.com. Check your inbox!" {
		t.Errorf("unexpected notice: %s", res.Notice.Message)
	}

	_, err = e.h.ForgotPassword(tab(), &pb.ForgotPasswordRequest{})
	if s, _ := status.FromError(err); s.Message() != "Please enter your email address first" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	e := setup(t)
	ctx, email := e.signUp(t)

	res, err := e.h.GetProfile(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if res.User.Email != email {
		t.Errorf("email: got %s", res.User.Email)
	}
	if _, err := e.h.GetProfile(tab(), &pb.Empty{}); codeOf(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated, got %v", err)
	}
}

// ----- bookings -----

func TestCreateBooking(t *testing.T) {
	e := setup(t)

	res, err := e.h.CreateBooking(tab(), bookingReq("Guest@Example.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b := res.Booking
	if len(b.BookingId) < 3 || b.BookingId[:2] != "BK" {
		t.Errorf("booking id: %s", b.BookingId)
	}
	if b.UserEmail != "guest@example.com" {
		t.Errorf("user email: %s", b.UserEmail)
	}
	if b.BookingDate != "03/10/2026" {
		t.Errorf("booking date: %s", b.BookingDate)
	}
	if !b.Upcoming {
		t.Error("expected upcoming")
	}
	if res.Notice == nil || res.Notice.Kind != "success" {
		t.Errorf("unexpected notice: %+v", res.Notice)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name   string
		modify func(r *pb.CreateBookingRequest)
	}{
		{"missing service", func(r *pb.CreateBookingRequest) { r.ServiceName = "" }},
		{"short name", func(r *pb.CreateBookingRequest) { r.CustomerName = "A" }},
		{"bad email", func(r *pb.CreateBookingRequest) { r.CustomerEmail = "nope" }},
		{"short phone", func(r *pb.CreateBookingRequest) { r.CustomerPhone = "555-1234" }},
		{"past date", func(r *pb.CreateBookingRequest) { r.PreferredDate = "2026-03-01" }},
		{"short address", func(r *pb.CreateBookingRequest) { r.CustomerAddress = "12 Main" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingReq("guest@example.com")
			tt.modify(req)
			_, err := e.h.CreateBooking(tab(), req)
			if codeOf(err) != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

func TestListBookings(t *testing.T) {
	e := setup(t)
	ctx, email := e.signUp(t)

	first := bookingReq(email)
	second := bookingReq(email)
	second.PreferredDate = "2026-04-01"
	for _, r := range []*pb.CreateBookingRequest{first, second, bookingReq("someone@else.com")} {
		if _, err := e.h.CreateBooking(ctx, r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	res, err := e.h.ListBookings(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(res.Bookings))
	}
	if res.Bookings[0].PreferredDate != "2026-04-01" {
		t.Errorf("expected latest date first, got %s", res.Bookings[0].PreferredDate)
	}
}

func TestCancelBooking(t *testing.T) {
	e := setup(t)
	ctx, email := e.signUp(t)
	other, _ := e.signUp(t)

	cr, err := e.h.CreateBooking(ctx, bookingReq(email))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := cr.Booking.BookingId

	if _, err := e.h.CancelBooking(other, &pb.CancelBookingRequest{BookingId: id}); codeOf(err) != codes.NotFound {
		t.Errorf("expected NotFound for another user's booking, got %v", err)
	}

	res, err := e.h.CancelBooking(ctx, &pb.CancelBookingRequest{BookingId: id})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if res.Notice.Message != "Booking cancelled successfully" {
		t.Errorf("unexpected notice: %s", res.Notice.Message)
	}

	lr, _ := e.h.ListBookings(ctx, &pb.Empty{})
	if len(lr.Bookings) != 0 {
		t.Errorf("booking still listed after cancel")
	}
}

func TestRescheduleBooking(t *testing.T) {
	e := setup(t)
	ctx, email := e.signUp(t)

	cr, err := e.h.CreateBooking(ctx, bookingReq(email))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := e.h.RescheduleBooking(ctx, &pb.RescheduleBookingRequest{
		BookingId: cr.Booking.BookingId, PreferredDate: "2026-03-20", PreferredTime: "14:00",
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if res.Booking.PreferredDate != "2026-03-20" || res.Booking.PreferredTime != "14:00" {
		t.Errorf("not rescheduled: %+v", res.Booking)
	}
	if res.Booking.CustomerAddress != cr.Booking.CustomerAddress {
		t.Errorf("other fields changed: %+v", res.Booking)
	}

	_, err = e.h.RescheduleBooking(ctx, &pb.RescheduleBookingRequest{
		BookingId: "BK0missing", PreferredDate: "2026-03-20", PreferredTime: "14:00",
	})
	if codeOf(err) != codes.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

// ----- catalog and notices -----

func TestListServices(t *testing.T) {
	e := setup(t)

	res, err := e.h.ListServices(context.Background(), &pb.Empty{})
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(res.Services) == 0 || res.Services[0].Name != "House Cleaning" {
		t.Errorf("unexpected services: %v", res.Services)
	}
}

func TestGetServiceDetailsFallback(t *testing.T) {
	e := setup(t)

	res, err := e.h.GetServiceDetails(tab(), &pb.ServiceDetailsRequest{Name: "Kite Repair"})
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if res.Service.Duration != "Varies" {
		t.Errorf("expected fallback duration, got %s", res.Service.Duration)
	}
	if res.Notice.Kind != "info" {
		t.Errorf("expected info notice, got %s", res.Notice.Kind)
	}
}

func TestContact(t *testing.T) {
	e := setup(t)

	res, err := e.h.Contact(tab(), &pb.ContactRequest{Phone: "(555) 123-4567"})
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	if res.Digits != "5551234567" {
		t.Errorf("digits: %s", res.Digits)
	}
	if _, err := e.h.Contact(tab(), &pb.ContactRequest{Phone: "call me"}); codeOf(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestNoticesFeed(t *testing.T) {
	e := setup(t)
	ctx := tab()

	if _, err := e.h.SignIn(ctx, &pb.SignInRequest{}); err == nil {
		t.Fatal("expected error")
	}
	lr, err := e.h.ListNotices(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("notices: %v", err)
	}
	if len(lr.Notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(lr.Notices))
	}
	n := lr.Notices[0]
	if n.Message != "Please fill in all fields" || !n.Blocking {
		t.Errorf("unexpected notice: %+v", n)
	}

	dr, _ := e.h.DismissNotice(ctx, &pb.DismissNoticeRequest{Id: n.Id})
	if !dr.Dismissed {
		t.Error("expected dismissed")
	}
	lr, _ = e.h.ListNotices(ctx, &pb.Empty{})
	if len(lr.Notices) != 0 {
		t.Errorf("notice still pending after dismiss")
	}
}

package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "service-booking-api/api/booking/v1"
	"service-booking-api/internal/controller"
	"service-booking-api/internal/model"
	"service-booking-api/internal/notify"
)

type Handler struct {
	pb.UnimplementedBookingServiceServer
	ctl *controller.Controller
	log *zap.Logger
}

func New(ctl *controller.Controller, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{ctl: ctl, log: log.Named("grpc")}
}

var statusCodes = map[controller.Code]codes.Code{
	controller.CodeInvalid:         codes.InvalidArgument,
	controller.CodeConflict:        codes.AlreadyExists,
	controller.CodeUnauthenticated: codes.Unauthenticated,
	controller.CodeNotFound:        codes.NotFound,
	controller.CodeBusy:            codes.Aborted,
	controller.CodeInternal:        codes.Internal,
}

// toStatus maps a controller error to a gRPC status carrying the user message.
func (h *Handler) toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}
	var f *controller.Failure
	if !errors.As(err, &f) {
		h.log.Error("unmapped error", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(statusCodes[f.Code], f.Message)
}

func noticeProto(n notify.Notice) *pb.Notice {
	if n.ID == "" {
		return nil
	}
	out := &pb.Notice{
		Id:        n.ID,
		Kind:      string(n.Kind),
		Message:   n.Message,
		Blocking:  n.Blocking,
		CreatedAt: n.CreatedAt,
	}
	if n.ExpiresAt != nil {
		out.ExpiresAt = *n.ExpiresAt
	}
	return out
}

func userProto(u model.User) *pb.User {
	return &pb.User{Id: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func bookingProto(b model.Booking, upcoming bool) *pb.Booking {
	return &pb.Booking{
		BookingId:       b.BookingID,
		ServiceName:     b.ServiceName,
		CustomerName:    b.CustomerName,
		UserEmail:       b.UserEmail,
		CustomerPhone:   b.CustomerPhone,
		PreferredDate:   b.PreferredDate,
		PreferredTime:   b.PreferredTime,
		CustomerAddress: b.CustomerAddress,
		AdditionalNotes: b.AdditionalNotes,
		BookingDate:     b.BookingDate,
		CreatedAt:       b.CreatedAt,
		Upcoming:        upcoming,
	}
}

func serviceProto(s model.Service) *pb.Service {
	return &pb.Service{
		Id:          int64(s.ID),
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Includes:    s.Includes,
	}
}

package handler

import (
	"context"

	pb "service-booking-api/api/booking/v1"
	"service-booking-api/internal/controller"
)

func (h *Handler) CreateBooking(ctx context.Context, req *pb.CreateBookingRequest) (*pb.BookingResponse, error) {
	res, err := h.ctl.CreateBooking(ctx, controller.BookingInput{
		ServiceName:     req.ServiceName,
		CustomerName:    req.CustomerName,
		Email:           req.CustomerEmail,
		Phone:           req.CustomerPhone,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		Address:         req.CustomerAddress,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.BookingResponse{
		Booking: bookingProto(res.Booking, res.Upcoming),
		Notice:  noticeProto(res.Notice),
	}, nil
}

func (h *Handler) ListBookings(ctx context.Context, _ *pb.Empty) (*pb.ListBookingsResponse, error) {
	list, err := h.ctl.ListBookings(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	out := &pb.ListBookingsResponse{Bookings: make([]*pb.Booking, 0, len(list))}
	for _, b := range list {
		out.Bookings = append(out.Bookings, bookingProto(b.Booking, b.Upcoming))
	}
	return out, nil
}

func (h *Handler) CancelBooking(ctx context.Context, req *pb.CancelBookingRequest) (*pb.NoticeResponse, error) {
	n, err := h.ctl.CancelBooking(ctx, req.BookingId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.NoticeResponse{Notice: noticeProto(n)}, nil
}

func (h *Handler) RescheduleBooking(ctx context.Context, req *pb.RescheduleBookingRequest) (*pb.BookingResponse, error) {
	res, err := h.ctl.RescheduleBooking(ctx, controller.RescheduleInput{
		BookingID:     req.BookingId,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.BookingResponse{
		Booking: bookingProto(res.Booking, res.Upcoming),
		Notice:  noticeProto(res.Notice),
	}, nil
}

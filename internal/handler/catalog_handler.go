package handler

import (
	"context"

	pb "service-booking-api/api/booking/v1"
)

func (h *Handler) ListServices(_ context.Context, _ *pb.Empty) (*pb.ListServicesResponse, error) {
	list := h.ctl.Services()
	out := &pb.ListServicesResponse{Services: make([]*pb.Service, 0, len(list))}
	for _, s := range list {
		out.Services = append(out.Services, serviceProto(s))
	}
	return out, nil
}

func (h *Handler) GetServiceDetails(ctx context.Context, req *pb.ServiceDetailsRequest) (*pb.ServiceDetailsResponse, error) {
	s, n := h.ctl.ServiceDetails(ctx, req.Name)
	return &pb.ServiceDetailsResponse{Service: serviceProto(s), Notice: noticeProto(n)}, nil
}

func (h *Handler) Contact(ctx context.Context, req *pb.ContactRequest) (*pb.ContactResponse, error) {
	digits, n, err := h.ctl.Contact(ctx, req.Phone)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.ContactResponse{Digits: digits, Notice: noticeProto(n)}, nil
}

func (h *Handler) ListNotices(ctx context.Context, _ *pb.Empty) (*pb.ListNoticesResponse, error) {
	list := h.ctl.Notices(ctx)
	out := &pb.ListNoticesResponse{Notices: make([]*pb.Notice, 0, len(list))}
	for _, n := range list {
		out.Notices = append(out.Notices, noticeProto(n))
	}
	return out, nil
}

func (h *Handler) DismissNotice(ctx context.Context, req *pb.DismissNoticeRequest) (*pb.DismissNoticeResponse, error) {
	return &pb.DismissNoticeResponse{Dismissed: h.ctl.DismissNotice(ctx, req.Id)}, nil
}

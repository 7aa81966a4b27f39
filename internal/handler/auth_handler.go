package handler

import (
	"context"

	pb "service-booking-api/api/booking/v1"
	"service-booking-api/internal/controller"
)

func authResponse(res *controller.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		Token:     res.Token,
		User:      userProto(res.User),
		ExpiresAt: res.Session.ExpiresAt,
		Notice:    noticeProto(res.Notice),
	}
}

func (h *Handler) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.AuthResponse, error) {
	res, err := h.ctl.SignUp(ctx, controller.SignUpInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AcceptTerms:     req.AcceptTerms,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return authResponse(res), nil
}

func (h *Handler) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.AuthResponse, error) {
	res, err := h.ctl.SignIn(ctx, controller.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return authResponse(res), nil
}

func (h *Handler) Logout(ctx context.Context, _ *pb.Empty) (*pb.NoticeResponse, error) {
	n, err := h.ctl.Logout(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.NoticeResponse{Notice: noticeProto(n)}, nil
}

func (h *Handler) LogoutAll(ctx context.Context, _ *pb.Empty) (*pb.NoticeResponse, error) {
	n, err := h.ctl.LogoutAll(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.NoticeResponse{Notice: noticeProto(n)}, nil
}

func (h *Handler) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.NoticeResponse, error) {
	n, err := h.ctl.ForgotPassword(ctx, req.Email)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.NoticeResponse{Notice: noticeProto(n)}, nil
}

func (h *Handler) GetProfile(ctx context.Context, _ *pb.Empty) (*pb.UserResponse, error) {
	u, err := h.ctl.Profile(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.UserResponse{User: userProto(*u)}, nil
}

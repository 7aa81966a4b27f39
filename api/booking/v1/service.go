package bookingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "booking.v1.BookingService"

const (
	BookingService_SignUp_FullMethodName            = "/booking.v1.BookingService/SignUp"
	BookingService_SignIn_FullMethodName            = "/booking.v1.BookingService/SignIn"
	BookingService_Logout_FullMethodName            = "/booking.v1.BookingService/Logout"
	BookingService_LogoutAll_FullMethodName         = "/booking.v1.BookingService/LogoutAll"
	BookingService_ForgotPassword_FullMethodName    = "/booking.v1.BookingService/ForgotPassword"
	BookingService_GetProfile_FullMethodName        = "/booking.v1.BookingService/GetProfile"
	BookingService_ListServices_FullMethodName      = "/booking.v1.BookingService/ListServices"
	BookingService_GetServiceDetails_FullMethodName = "/booking.v1.BookingService/GetServiceDetails"
	BookingService_Contact_FullMethodName           = "/booking.v1.BookingService/Contact"
	BookingService_CreateBooking_FullMethodName     = "/booking.v1.BookingService/CreateBooking"
	BookingService_ListBookings_FullMethodName      = "/booking.v1.BookingService/ListBookings"
	BookingService_CancelBooking_FullMethodName     = "/booking.v1.BookingService/CancelBooking"
	BookingService_RescheduleBooking_FullMethodName = "/booking.v1.BookingService/RescheduleBooking"
	BookingService_ListNotices_FullMethodName       = "/booking.v1.BookingService/ListNotices"
	BookingService_DismissNotice_FullMethodName     = "/booking.v1.BookingService/DismissNotice"
)

type BookingServiceServer interface {
	SignUp(context.Context, *SignUpRequest) (*AuthResponse, error)
	SignIn(context.Context, *SignInRequest) (*AuthResponse, error)
	Logout(context.Context, *Empty) (*NoticeResponse, error)
	LogoutAll(context.Context, *Empty) (*NoticeResponse, error)
	ForgotPassword(context.Context, *ForgotPasswordRequest) (*NoticeResponse, error)
	GetProfile(context.Context, *Empty) (*UserResponse, error)
	ListServices(context.Context, *Empty) (*ListServicesResponse, error)
	GetServiceDetails(context.Context, *ServiceDetailsRequest) (*ServiceDetailsResponse, error)
	Contact(context.Context, *ContactRequest) (*ContactResponse, error)
	CreateBooking(context.Context, *CreateBookingRequest) (*BookingResponse, error)
	ListBookings(context.Context, *Empty) (*ListBookingsResponse, error)
	CancelBooking(context.Context, *CancelBookingRequest) (*NoticeResponse, error)
	RescheduleBooking(context.Context, *RescheduleBookingRequest) (*BookingResponse, error)
	ListNotices(context.Context, *Empty) (*ListNoticesResponse, error)
	DismissNotice(context.Context, *DismissNoticeRequest) (*DismissNoticeResponse, error)
}

// UnimplementedBookingServiceServer answers Unimplemented for every method.
type UnimplementedBookingServiceServer struct{}

func unimplemented(name string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", name)
}

func (UnimplementedBookingServiceServer) SignUp(context.Context, *SignUpRequest) (*AuthResponse, error) {
	return nil, unimplemented("SignUp")
}
func (UnimplementedBookingServiceServer) SignIn(context.Context, *SignInRequest) (*AuthResponse, error) {
	return nil, unimplemented("SignIn")
}
func (UnimplementedBookingServiceServer) Logout(context.Context, *Empty) (*NoticeResponse, error) {
	return nil, unimplemented("Logout")
}
func (UnimplementedBookingServiceServer) LogoutAll(context.Context, *Empty) (*NoticeResponse, error) {
	return nil, unimplemented("LogoutAll")
}
func (UnimplementedBookingServiceServer) ForgotPassword(context.Context, *ForgotPasswordRequest) (*NoticeResponse, error) {
	return nil, unimplemented("ForgotPassword")
}
func (UnimplementedBookingServiceServer) GetProfile(context.Context, *Empty) (*UserResponse, error) {
	return nil, unimplemented("GetProfile")
}
func (UnimplementedBookingServiceServer) ListServices(context.Context, *Empty) (*ListServicesResponse, error) {
	return nil, unimplemented("ListServices")
}
func (UnimplementedBookingServiceServer) GetServiceDetails(context.Context, *ServiceDetailsRequest) (*ServiceDetailsResponse, error) {
	return nil, unimplemented("GetServiceDetails")
}
func (UnimplementedBookingServiceServer) Contact(context.Context, *ContactRequest) (*ContactResponse, error) {
	return nil, unimplemented("Contact")
}
func (UnimplementedBookingServiceServer) CreateBooking(context.Context, *CreateBookingRequest) (*BookingResponse, error) {
	return nil, unimplemented("CreateBooking")
}
func (UnimplementedBookingServiceServer) ListBookings(context.Context, *Empty) (*ListBookingsResponse, error) {
	return nil, unimplemented("ListBookings")
}
func (UnimplementedBookingServiceServer) CancelBooking(context.Context, *CancelBookingRequest) (*NoticeResponse, error) {
	return nil, unimplemented("CancelBooking")
}
func (UnimplementedBookingServiceServer) RescheduleBooking(context.Context, *RescheduleBookingRequest) (*BookingResponse, error) {
	return nil, unimplemented("RescheduleBooking")
}
func (UnimplementedBookingServiceServer) ListNotices(context.Context, *Empty) (*ListNoticesResponse, error) {
	return nil, unimplemented("ListNotices")
}
func (UnimplementedBookingServiceServer) DismissNotice(context.Context, *DismissNoticeRequest) (*DismissNoticeResponse, error) {
	return nil, unimplemented("DismissNotice")
}

// unary builds the method descriptor for one rpc from its server method.
func unary[Req any, PReq interface {
	*Req
	Message
}, Resp any](name string, call func(BookingServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BookingServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BookingServiceServer), ctx, req.(PReq))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var BookingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("SignUp", BookingServiceServer.SignUp),
		unary("SignIn", BookingServiceServer.SignIn),
		unary("Logout", BookingServiceServer.Logout),
		unary("LogoutAll", BookingServiceServer.LogoutAll),
		unary("ForgotPassword", BookingServiceServer.ForgotPassword),
		unary("GetProfile", BookingServiceServer.GetProfile),
		unary("ListServices", BookingServiceServer.ListServices),
		unary("GetServiceDetails", BookingServiceServer.GetServiceDetails),
		unary("Contact", BookingServiceServer.Contact),
		unary("CreateBooking", BookingServiceServer.CreateBooking),
		unary("ListBookings", BookingServiceServer.ListBookings),
		unary("CancelBooking", BookingServiceServer.CancelBooking),
		unary("RescheduleBooking", BookingServiceServer.RescheduleBooking),
		unary("ListNotices", BookingServiceServer.ListNotices),
		unary("DismissNotice", BookingServiceServer.DismissNotice),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/booking/v1/booking.proto",
}

func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&BookingService_ServiceDesc, srv)
}

// BookingServiceClient calls the service with Codec on every call.
type BookingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingServiceClient(cc grpc.ClientConnInterface) *BookingServiceClient {
	return &BookingServiceClient{cc: cc}
}

func invoke[Resp any, PResp interface {
	*Resp
	Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (PResp, error) {
	out := PResp(new(Resp))
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		var zero PResp
		return zero, err
	}
	return out, nil
}

func (c *BookingServiceClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, BookingService_SignUp_FullMethodName, in, opts)
}

func (c *BookingServiceClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, BookingService_SignIn_FullMethodName, in, opts)
}

func (c *BookingServiceClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NoticeResponse, error) {
	return invoke[NoticeResponse](ctx, c.cc, BookingService_Logout_FullMethodName, in, opts)
}

func (c *BookingServiceClient) LogoutAll(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NoticeResponse, error) {
	return invoke[NoticeResponse](ctx, c.cc, BookingService_LogoutAll_FullMethodName, in, opts)
}

func (c *BookingServiceClient) ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*NoticeResponse, error) {
	return invoke[NoticeResponse](ctx, c.cc, BookingService_ForgotPassword_FullMethodName, in, opts)
}

func (c *BookingServiceClient) GetProfile(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, BookingService_GetProfile_FullMethodName, in, opts)
}

func (c *BookingServiceClient) ListServices(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	return invoke[ListServicesResponse](ctx, c.cc, BookingService_ListServices_FullMethodName, in, opts)
}

func (c *BookingServiceClient) GetServiceDetails(ctx context.Context, in *ServiceDetailsRequest, opts ...grpc.CallOption) (*ServiceDetailsResponse, error) {
	return invoke[ServiceDetailsResponse](ctx, c.cc, BookingService_GetServiceDetails_FullMethodName, in, opts)
}

func (c *BookingServiceClient) Contact(ctx context.Context, in *ContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c.cc, BookingService_Contact_FullMethodName, in, opts)
}

func (c *BookingServiceClient) CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_CreateBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) ListBookings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	return invoke[ListBookingsResponse](ctx, c.cc, BookingService_ListBookings_FullMethodName, in, opts)
}

func (c *BookingServiceClient) CancelBooking(ctx context.Context, in *CancelBookingRequest, opts ...grpc.CallOption) (*NoticeResponse, error) {
	return invoke[NoticeResponse](ctx, c.cc, BookingService_CancelBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) RescheduleBooking(ctx context.Context, in *RescheduleBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_RescheduleBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) ListNotices(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListNoticesResponse, error) {
	return invoke[ListNoticesResponse](ctx, c.cc, BookingService_ListNotices_FullMethodName, in, opts)
}

func (c *BookingServiceClient) DismissNotice(ctx context.Context, in *DismissNoticeRequest, opts ...grpc.CallOption) (*DismissNoticeResponse, error) {
	return invoke[DismissNoticeResponse](ctx, c.cc, BookingService_DismissNotice_FullMethodName, in, opts)
}

package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "service-booking-api/api/booking/v1"
	"service-booking-api/internal/controller"
	"service-booking-api/internal/model"
)

// ClientIDHeader names the browser tab a request comes from.
const ClientIDHeader = "x-client-id"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Session, error)
}

// these need a signed-in caller
var protected = map[string]bool{
	pb.BookingService_Logout_FullMethodName:            true,
	pb.BookingService_LogoutAll_FullMethodName:         true,
	pb.BookingService_GetProfile_FullMethodName:        true,
	pb.BookingService_ListBookings_FullMethodName:      true,
	pb.BookingService_CancelBooking_FullMethodName:     true,
	pb.BookingService_RescheduleBooking_FullMethodName: true,
}

// Resolve attaches the client id and, when the bearer token is good, the
// session to ctx. A bad token is an error only when required is set.
func Resolve(ctx context.Context, a Authenticator, authHeader, clientID string, required bool) (context.Context, error) {
	if clientID != "" {
		ctx = controller.WithClient(ctx, clientID)
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if raw == "" {
		if required {
			return nil, &controller.Failure{Code: controller.CodeUnauthenticated, Message: "Please sign in first"}
		}
		return ctx, nil
	}
	sess, err := a.Authenticate(ctx, raw)
	if err != nil {
		if required || controller.CodeOf(err) == controller.CodeInternal {
			return nil, err
		}
		return ctx, nil
	}
	return controller.WithSession(ctx, sess), nil
}

func Auth(a Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)

		// token from Authorization: Bearer <jwt>
		ctx, err := Resolve(ctx, a, first(md, "authorization"), first(md, ClientIDHeader), protected[info.FullMethod])
		if err != nil {
			if controller.CodeOf(err) == controller.CodeInternal {
				return nil, status.Error(codes.Internal, "internal error")
			}
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return next(ctx, req)
	}
}

func first(md metadata.MD, key string) string {
	if vals := md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

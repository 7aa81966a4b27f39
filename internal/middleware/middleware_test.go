package middleware

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "service-booking-api/api/booking/v1"
	"service-booking-api/internal/controller"
	"service-booking-api/internal/model"
)

type fakeAuth struct {
	sessions map[string]*model.Session
	err      error
}

func (f fakeAuth) Authenticate(_ context.Context, token string) (*model.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, &controller.Failure{Code: controller.CodeUnauthenticated, Message: "Please sign in first"}
}

func incoming(kv ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(kv...))
}

// capture returns a handler that records the context it was called with.
func capture(got *context.Context) grpc.UnaryHandler {
	return func(ctx context.Context, _ any) (any, error) {
		*got = ctx
		return "ok", nil
	}
}

func info(method string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: method}
}

func TestAuthInterceptor(t *testing.T) {
	sess := &model.Session{ID: "h1", Email: "ann@example.com"}
	interceptor := Auth(fakeAuth{sessions: map[string]*model.Session{"good": sess}})

	tests := []struct {
		name    string
		ctx     context.Context
		method  string
		code    codes.Code
		session bool
	}{
		{"open without token", incoming(), pb.BookingService_ListServices_FullMethodName, codes.OK, false},
		{"open with bad token", incoming("authorization", "Bearer junk"), pb.BookingService_SignIn_FullMethodName, codes.OK, false},
		{"open with good token", incoming("authorization", "Bearer good"), pb.BookingService_CreateBooking_FullMethodName, codes.OK, true},
		{"protected without token", incoming(), pb.BookingService_ListBookings_FullMethodName, codes.Unauthenticated, false},
		{"protected with bad token", incoming("authorization", "Bearer junk"), pb.BookingService_Logout_FullMethodName, codes.Unauthenticated, false},
		{"protected with good token", incoming("authorization", "Bearer good"), pb.BookingService_GetProfile_FullMethodName, codes.OK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got context.Context
			_, err := interceptor(tt.ctx, nil, info(tt.method), capture(&got))
			assert.Equal(t, tt.code, status.Code(err))
			if tt.code != codes.OK {
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.session, controller.SessionFrom(got) != nil)
		})
	}
}

func TestAuthInterceptorAttachesClient(t *testing.T) {
	interceptor := Auth(fakeAuth{})

	var got context.Context
	_, err := interceptor(incoming(ClientIDHeader, "tab-1"), nil, info(pb.BookingService_ListNotices_FullMethodName), capture(&got))
	require.NoError(t, err)
	assert.Equal(t, "client:tab-1", controller.Audience(got))
}

func TestAuthInterceptorStoreFailure(t *testing.T) {
	interceptor := Auth(fakeAuth{err: &controller.Failure{Code: controller.CodeInternal, Message: "boom", Err: errors.New("disk")}})

	var got context.Context
	_, err := interceptor(incoming("authorization", "Bearer x"), nil, info(pb.BookingService_ListServices_FullMethodName), capture(&got))
	assert.Equal(t, codes.Internal, status.Code(err))
}

func peerAt(ip net.IP, port int) context.Context {
	return peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: ip, Port: port}})
}

func TestRateLimitInterceptor(t *testing.T) {
	interceptor := RateLimit(NewRateLimiter(0.001, 2))
	ctx := peerAt(net.IPv4(10, 0, 0, 1), 4000)

	var got context.Context
	for i := 0; i < 2; i++ {
		_, err := interceptor(ctx, nil, info(pb.BookingService_SignIn_FullMethodName), capture(&got))
		require.NoError(t, err)
	}
	_, err := interceptor(ctx, nil, info(pb.BookingService_SignIn_FullMethodName), capture(&got))
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// a new connection from the same host shares the bucket
	_, err = interceptor(peerAt(net.IPv4(10, 0, 0, 1), 4001), nil, info(pb.BookingService_SignIn_FullMethodName), capture(&got))
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// other methods are not limited
	_, err = interceptor(ctx, nil, info(pb.BookingService_ListServices_FullMethodName), capture(&got))
	assert.NoError(t, err)
}

func TestRateLimitIgnoresForwardedForFromRemotePeers(t *testing.T) {
	interceptor := RateLimit(NewRateLimiter(0.0001, 1))
	ctx := peerAt(net.IPv4(198, 51, 100, 9), 5555)

	allowed := 0
	for i := 0; i < 50; i++ {
		spoofed := metadata.NewIncomingContext(ctx, metadata.Pairs(ForwardedForHeader, fmt.Sprintf("203.0.113.%d", i)))
		var got context.Context
		if _, err := interceptor(spoofed, nil, info(pb.BookingService_SignIn_FullMethodName), capture(&got)); err == nil {
			allowed++
		}
	}
	assert.Equal(t, 1, allowed)
}

func TestRateLimitTrustsForwardedForFromLoopback(t *testing.T) {
	interceptor := RateLimit(NewRateLimiter(0.0001, 1))
	bridge := peerAt(net.IPv4(127, 0, 0, 1), 6000)

	var got context.Context
	for _, ip := range []string{"203.0.113.7", "203.0.113.8"} {
		fwd := metadata.NewIncomingContext(bridge, metadata.Pairs(ForwardedForHeader, ip))
		_, err := interceptor(fwd, nil, info(pb.BookingService_SignUp_FullMethodName), capture(&got))
		assert.NoError(t, err, ip)
	}
	fwd := metadata.NewIncomingContext(bridge, metadata.Pairs(ForwardedForHeader, "203.0.113.7"))
	_, err := interceptor(fwd, nil, info(pb.BookingService_SignUp_FullMethodName), capture(&got))
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Allow("a")
	rl.Allow("b")

	assert.Equal(t, 0, rl.Sweep(time.Hour))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, rl.Sweep(time.Millisecond))
	assert.True(t, rl.Allow("a"), "a swept client starts with a full bucket")
}

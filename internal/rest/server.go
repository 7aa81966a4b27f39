// Package rest serves the booking API as JSON over HTTP, next to the
// gRPC-Web bridge.
package rest

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"service-booking-api/internal/controller"
	mw "service-booking-api/internal/middleware"
)

type Server struct {
	ctl     *controller.Controller
	limiter *mw.RateLimiter
	log     *zap.Logger
}

type Options struct {
	AllowedOrigins []string
	Limiter        *mw.RateLimiter
	// GRPCWeb, when set, receives every request under its prefix.
	GRPCWeb       http.Handler
	GRPCWebPrefix string
	// TrustedProxies may set X-Forwarded-For. Without any, the client
	// address is the connection's remote host.
	TrustedProxies []*net.IPNet
}

// New builds the echo instance with every route registered.
func New(ctl *controller.Controller, opts Options, log *zap.Logger) *echo.Echo {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{ctl: ctl, limiter: opts.Limiter, log: log.Named("rest")}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = serializer{}
	e.HTTPErrorHandler = s.errorHandler
	e.IPExtractor = ipExtractor(opts.TrustedProxies)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		// the bridge answers its own preflights
		Skipper: func(c echo.Context) bool {
			return opts.GRPCWeb != nil && strings.HasPrefix(c.Request().URL.Path, opts.GRPCWebPrefix+"/")
		},
		AllowOrigins: origins(opts.AllowedOrigins),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Client-Id"},
		MaxAge:       int((24 * time.Hour).Seconds()),
	}))

	if opts.GRPCWeb != nil {
		e.Any(opts.GRPCWebPrefix+"/*", echo.WrapHandler(opts.GRPCWeb))
	}

	api := e.Group("/api")

	e.GET("/health", func(c echo.Context) error {
		return ok(c, map[string]string{"status": "ok"})
	})

	open := s.session(false)
	signedIn := s.session(true)
	limited := s.rateLimit

	api.GET("/services", s.listServices)
	api.GET("/services/:name", s.serviceDetails, open)
	api.POST("/contact", s.contact, open)

	api.POST("/signup", s.signUp, limited, open)
	api.POST("/login", s.signIn, limited, open)
	api.POST("/forgot-password", s.forgotPassword, limited, open)
	api.POST("/logout", s.logout, signedIn)
	api.POST("/logout-all", s.logoutAll, signedIn)
	api.GET("/users/me", s.profile, signedIn)

	api.GET("/bookings", s.listBookings, signedIn)
	api.POST("/bookings", s.createBooking, open)
	api.PUT("/bookings/:id", s.rescheduleBooking, signedIn)
	api.DELETE("/bookings/:id", s.cancelBooking, signedIn)

	api.GET("/notices", s.listNotices, open)
	api.DELETE("/notices/:id", s.dismissNotice, open)

	return e
}

func origins(list []string) []string {
	if len(list) == 0 {
		return []string{"*"}
	}
	return list
}

// session resolves the bearer token and X-Client-Id into the request context.
func (s *Server) session(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx, err := mw.Resolve(req.Context(), s.ctl, req.Header.Get(echo.HeaderAuthorization), req.Header.Get("X-Client-Id"), required)
			if err != nil {
				return s.failWith(c, err)
			}
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.limiter != nil && !s.limiter.Allow(c.RealIP()) {
			return fail(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests", nil)
		}
		return next(c)
	}
}

func ipExtractor(proxies []*net.IPNet) echo.IPExtractor {
	if len(proxies) == 0 {
		return echo.ExtractIPDirect()
	}
	trust := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range proxies {
		trust = append(trust, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(trust...)
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code, msg := http.StatusInternalServerError, "internal error"
	if he, isHTTP := err.(*echo.HTTPError); isHTTP {
		code = he.Code
		if m, isString := he.Message.(string); isString {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		s.log.Error("handler error", zap.Error(err))
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = fail(c, code, "HTTP_ERROR", msg, nil)
}

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "service-booking-api/api/booking/v1"
	"service-booking-api/internal/catalog"
	"service-booking-api/internal/config"
	"service-booking-api/internal/controller"
	gweb "service-booking-api/internal/grpcweb"
	"service-booking-api/internal/handler"
	"service-booking-api/internal/janitor"
	"service-booking-api/internal/logging"
	"service-booking-api/internal/middleware"
	"service-booking-api/internal/notify"
	"service-booking-api/internal/rest"
	"service-booking-api/internal/store"
)

// rate-limit buckets idle this long are dropped
const limiterIdle = 3 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not up yet
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	zap.ReplaceGlobals(log)
	defer log.Sync()

	// storage
	ctx := context.Background()
	st, err := store.Open(ctx, cfg.StoreDriver, cfg.StoreDSN, log)
	if err != nil {
		log.Fatal("store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer st.Close()
	log.Info("store ready", zap.String("driver", cfg.StoreDriver))

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal("catalog", zap.Error(err))
	}

	notes := notify.New(cfg.NoticeTTL, log).WithLimits(cfg.ModalMaxAge, cfg.NoticeFeedCap)
	ctl := controller.New(st, notes, cat, cfg.Secret,
		controller.WithLatency(cfg.SubmitLatency),
		controller.WithSessionTTL(cfg.SessionTTL),
		controller.WithStrictEmail(cfg.StrictEmail),
		controller.WithLocation(cfg.Location),
		controller.WithLogger(log),
	)
	h := handler.New(ctl, log)

	// grpc server
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.RateLimit(rl),
			middleware.Auth(ctl),
		),
	)
	pb.RegisterBookingServiceServer(srv, h)

	// start grpc on TCP
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}
	go func() {
		log.Info("grpc listening", zap.String("port", cfg.GRPCPort))
		if err := srv.Serve(lis); err != nil {
			log.Error("grpc", zap.Error(err))
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.GRPCPort, cfg.AllowedOrigins, log)
	if err != nil {
		log.Fatal("bridge", zap.Error(err))
	}
	bridge.TrustProxies(cfg.TrustedProxies)
	defer bridge.Close()

	e := rest.New(ctl, rest.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Limiter:        rl,
		GRPCWeb:        bridge.Handler(),
		GRPCWebPrefix:  "/" + pb.ServiceName,
		TrustedProxies: cfg.TrustedProxies,
	}, log)
	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("http listening", zap.String("port", cfg.WebPort))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http", zap.Error(err))
		}
	}()

	// clean-up jobs
	jan := janitor.New(cfg.Location, log)
	jobs := map[string]janitor.Job{
		"sessions": func(ctx context.Context) (int, error) {
			return st.PurgeExpiredSessions(ctx, time.Now())
		},
		"notices": func(context.Context) (int, error) {
			return notes.Sweep(), nil
		},
		"ratelimit": func(context.Context) (int, error) {
			return rl.Sweep(limiterIdle), nil
		},
	}
	for name, job := range jobs {
		if err := jan.Add(name, cfg.SweepSchedule, job); err != nil {
			log.Fatal("janitor", zap.Error(err))
		}
	}
	jan.Start()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	<-jan.Stop().Done()
	if err := httpSrv.Shutdown(shutdown); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	srv.GracefulStop()
}

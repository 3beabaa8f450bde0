// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/config"
	"github.com/Shivanand-hulikatti/conference-lodging/internal/database"
	"github.com/Shivanand-hulikatti/conference-lodging/internal/handler"
	"github.com/Shivanand-hulikatti/conference-lodging/internal/messaging"
	"github.com/Shivanand-hulikatti/conference-lodging/internal/repository"
	"github.com/Shivanand-hulikatti/conference-lodging/internal/service"
	"github.com/Shivanand-hulikatti/conference-lodging/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// ── 1. Tracing ───────────────────────────────────────────────────────
	shutdownTracing, err := telemetry.Setup(ctx, "lodging-api", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	// ── 2. Connect to PostgreSQL ──────────────────────────────────────────
	pool, err := database.NewPool(ctx, cfg.DB, logger)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("connected to PostgreSQL", slog.String("host", cfg.DB.Host), slog.String("db", cfg.DB.DBName))

	// ── 3. Booking events ────────────────────────────────────────────────
	var notifier service.BookingNotifier = service.NopNotifier{}
	if cfg.RabbitURL != "" {
		pub, err := messaging.NewPublisher(cfg.RabbitURL, cfg.BookingExchange)
		if err != nil {
			return fmt.Errorf("rabbitmq: %w", err)
		}
		defer pub.Close()
		notifier = pub
		logger.Info("publishing booking events", slog.String("exchange", cfg.BookingExchange))
	}

	// ── 4. Wire up layers ────────────────────────────────────────────────
	txManager := repository.NewTxManager(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	hotelRepo := repository.NewHotelRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	entitlements := service.NewEntitlementResolver(enrollmentRepo, ticketRepo)
	var authzOpts []service.AuthorizerOption
	if cfg.SingleBookingPerUser {
		authzOpts = append(authzOpts, service.WithSingleBookingPerUser())
	}
	authz := service.NewBookingAuthorizer(entitlements, service.NewCapacityGuard(roomRepo), bookingRepo, authzOpts...)

	bookingSvc := service.NewBookingService(txManager, authz, bookingRepo,
		service.WithNotifier(notifier),
		service.WithLogger(logger),
	)
	hotelSvc := service.NewHotelService(entitlements, hotelRepo)
	ticketSvc := service.NewTicketService(enrollmentRepo, ticketRepo)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo)

	// ── 5. Build the router ───────────────────────────────────────────────
	router := handler.NewRouter(handler.RouterConfig{
		Bookings:    bookingSvc,
		Hotels:      hotelSvc,
		Tickets:     ticketSvc,
		Enrollments: enrollmentSvc,
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	// ── 6. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

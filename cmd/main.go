// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventra/eventra-backend/internal/auth"
	"github.com/eventra/eventra-backend/internal/config"
	"github.com/eventra/eventra-backend/internal/database"
	"github.com/eventra/eventra-backend/internal/handler"
	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/repository"
	"github.com/eventra/eventra-backend/internal/service"
	"github.com/eventra/eventra-backend/internal/ticket"
)

func main() {
	if err := run(); err != nil {
		logger.Log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.Load()

	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Log.Info("connected to postgres", "host", cfg.DBHost, "database", cfg.DBName)

	// Repositories
	eventRepo := repository.NewEventRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	guestRepo := repository.NewGuestRepository(pool)
	carouselRepo := repository.NewCarouselRepository(pool)
	hosterRepo := repository.NewHosterRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// Services
	signer := auth.NewSigner(cfg.JWTSecret, cfg.TokenTTL)
	tickets := ticket.NewGenerator(cfg.PublicBaseURL)

	authSvc := service.NewAuthService(hosterRepo, adminRepo, signer, cfg.DefaultCommissionRate)
	eventSvc := service.NewEventService(eventRepo, reservationRepo)
	reservationSvc := service.NewReservationService(eventRepo, reservationRepo, guestRepo, hosterRepo, tickets)
	guestSvc := service.NewGuestService(guestRepo, eventRepo, hosterRepo)
	carouselSvc := service.NewCarouselService(carouselRepo)
	hosterSvc := service.NewHosterService(hosterRepo)
	statsSvc := service.NewStatsService(statsRepo)

	if err := authSvc.EnsureDefaultAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// Handlers
	r := handler.NewRouter(handler.Handlers{
		Auth:        handler.NewAuth(signer),
		AuthAPI:     handler.NewAuthHandler(authSvc, hosterSvc),
		Events:      handler.NewEventHandler(eventSvc, hosterSvc),
		Reservation: handler.NewReservationHandler(reservationSvc),
		Guests:      handler.NewGuestHandler(guestSvc, eventSvc),
		Carousel:    handler.NewCarouselHandler(carouselSvc),
		Admin:       handler.NewAdminHandler(hosterSvc, statsSvc),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		logger.Log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Log.Info("server stopped")
	return nil
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventsplatform/config"
	_ "eventsplatform/docs"
	"eventsplatform/internal/adapters/email"
	"eventsplatform/internal/clock"
	httpdelivery "eventsplatform/internal/delivery/http"
	"eventsplatform/internal/delivery/http/controllers"
	"eventsplatform/internal/delivery/http/middleware"
	"eventsplatform/internal/delivery/http/web"
	"eventsplatform/internal/i18n"
	"eventsplatform/internal/repository/memory"
	"eventsplatform/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Events Platform API
// @version 1.0
// @description Event discovery and ticket booking API with localized pages.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	eventRepo := memory.NewEventRepo(memory.SeedEvents())
	ticketRepo := memory.NewTicketRepo(memory.SeedTickets())
	clk := clock.NewSystem()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventService := services.NewEventService(eventRepo, cfg.PageSize)
	var bookingOpts []services.BookingServiceOption
	if cfg.BookingFailureRate > 0 {
		bookingOpts = append(bookingOpts, services.WithFaultInjection(cfg.BookingFailureRate))
	}
	if cfg.BookingDelayMs > 0 {
		bookingOpts = append(bookingOpts, services.WithSimulatedDelay(time.Duration(cfg.BookingDelayMs)*time.Millisecond))
	}
	bookingService := services.NewBookingService(eventRepo, ticketRepo, emailService, clk, logger, bookingOpts...)

	eventController := controllers.NewEventController(logger, eventService)
	ticketController := controllers.NewTicketController(logger, bookingService)
	pages, err := web.NewPageHandlers(logger, eventService, bookingService, cfg.BaseURL, clk)
	if err != nil {
		log.Fatalf("failed to create page handlers: %v", err)
	}

	mux := httpdelivery.NewRouter(eventController, ticketController, pages)

	defaultLocale, ok := i18n.Parse(cfg.DefaultLocale)
	if !ok {
		defaultLocale = i18n.DefaultLocale
	}
	// Locale must wrap logging so request logs carry the resolved locale.
	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.Locale(defaultLocale,
			middleware.LoggingMiddleware(logger, mux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

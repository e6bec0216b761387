package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/caiodev/ms-customer/internal/infra/database"
	"github.com/caiodev/ms-customer/internal/infra/http/handlers"
	"github.com/caiodev/ms-customer/internal/infra/http/middleware"
	"github.com/caiodev/ms-customer/internal/infra/integration/orders"
	"github.com/caiodev/ms-customer/internal/infra/mail"
	"github.com/caiodev/ms-customer/internal/infra/queue"
	"github.com/caiodev/ms-customer/internal/usecase"
)

func main() {
	godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		zlog.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	// RabbitMQ is optional: without it the registry still works, it just
	// stops emitting lifecycle events.
	var events usecase.EventPublisher
	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		zlog.Warn().Err(err).Msg("RabbitMQ unavailable, customer events disabled")
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// SMTP is optional too.
	var mailSender usecase.MailSender
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
		mailSender = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"),
			envOr("MAIL_FROM", "no-reply@ms-customer.local"),
		)
	} else {
		zlog.Warn().Msg("MAIL_HOST not set, welcome emails disabled")
	}

	// 1. Repositories
	customerRepo := database.NewCustomerRepository(db)

	// 2. Integration clients
	ordersURL := os.Getenv("ORDERS_SERVICE_URL")
	ordersClient := orders.NewClient(ordersURL)

	// 3. Services
	customerService := usecase.NewCustomerService(customerRepo, ordersClient, events, mailSender)

	// 4. Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, ordersURL)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", customerHandler.List)
		r.Post("/", customerHandler.Create)
		r.Get("/{code}", customerHandler.GetByCode)
		r.Put("/{code}", customerHandler.UpdateByCode)
		r.Delete("/{code}", customerHandler.DeleteByCode)
		r.Get("/email/{email}", customerHandler.GetByEmail)
		r.Put("/email/{email}", customerHandler.UpdateByEmail)
		r.Delete("/email/{email}", customerHandler.DeleteByEmail)
	})

	addr := ":" + envOr("PORT", "8080")
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		zlog.Info().Msgf("🔥 ms-customer listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error().Err(err).Msg("shutdown failed")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/config"
	"naija-aroma/internal/database"
	"naija-aroma/internal/graph"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/messaging"
	"naija-aroma/internal/notifier"
	"naija-aroma/internal/payments"
	"naija-aroma/internal/pricing"
	"naija-aroma/internal/repository"
	"naija-aroma/internal/services/accounts"
	"naija-aroma/internal/services/catalog"
	"naija-aroma/internal/services/catering"
	"naija-aroma/internal/services/gallery"
	"naija-aroma/internal/services/orders"
	"naija-aroma/internal/services/reviews"
	"naija-aroma/internal/services/settings"
)

func main() {
	var (
		mode       = flag.String("mode", "api", "Service mode (api, notifier)")
		configPath = flag.String("config", "config.yaml", "Path to configuration file")
		port       = flag.Int("port", 0, "HTTP port override (api mode)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", requestID, fmt.Sprintf("Starting %s", *mode), map[string]interface{}{
		"mode": *mode,
		"port": cfg.Server.Port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", requestID, "Received shutdown signal", nil)
		cancel()
	}()

	switch *mode {
	case "api":
		err = runAPI(ctx, cfg, log)
	case "notifier":
		err = runNotifier(ctx, cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("service_failed", requestID, fmt.Sprintf("%s failed", *mode), err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", requestID, "Service stopped gracefully", nil)
}

func runAPI(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", requestID, "Connected to PostgreSQL database", nil)

	if err := db.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("rabbitmq_connected", requestID, "Connected to RabbitMQ", nil)

	publisher := messaging.NewPublisher(conn, log)
	store := repository.NewStore(db)
	policy := auth.NewPolicy()

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	engine := pricing.NewEngine(cfg.Delivery.FreeThresholdAmount(), cfg.Delivery.DefaultFeeAmount())

	gatewayClient := payments.NewClient(cfg.Payments.GatewayURL, cfg.Payments.SecretKey, cfg.Payments.Currency, log)
	paymentsSvc := payments.NewService(store, gatewayClient, policy, publisher, cfg.Payments.WebhookSecret, log)

	root := graph.NewResolver(graph.Services{
		Accounts: accounts.NewService(store, policy, tokens, log),
		Catalog:  catalog.NewService(store, policy, log),
		Orders:   orders.NewService(store, policy, engine, publisher, log),
		Catering: catering.NewService(store, policy, publisher, log),
		Reviews:  reviews.NewService(store, policy, log),
		Gallery:  gallery.NewService(store, policy, log),
		Settings: settings.NewService(store, policy, log),
		Payments: paymentsSvc,
		Users:    store,
	}, log)

	callers := auth.NewResolver(tokens, store, log)
	handler := graph.NewHandler(root, callers, paymentsSvc, cfg.IsProduction(), log)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("server_started", requestID, fmt.Sprintf("GraphQL API listening on port %d", cfg.Server.Port), map[string]interface{}{
			"port": cfg.Server.Port,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func runNotifier(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log)
	worker := notifier.New(consumer, cfg.SMTP, log)

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

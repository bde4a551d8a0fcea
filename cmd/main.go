package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/course-platform/application/admin"
	broadcastapp "github.com/muhammadheryan/course-platform/application/broadcast"
	catalogapp "github.com/muhammadheryan/course-platform/application/catalog"
	completionapp "github.com/muhammadheryan/course-platform/application/completion"
	purchaseapp "github.com/muhammadheryan/course-platform/application/purchase"
	registrationapp "github.com/muhammadheryan/course-platform/application/registration"
	"github.com/muhammadheryan/course-platform/bot"
	"github.com/muhammadheryan/course-platform/cmd/config"
	redisclient "github.com/muhammadheryan/course-platform/cmd/redis"
	_ "github.com/muhammadheryan/course-platform/docs"
	adminRepo "github.com/muhammadheryan/course-platform/repository/admin"
	catalogRepo "github.com/muhammadheryan/course-platform/repository/catalog"
	completionRepo "github.com/muhammadheryan/course-platform/repository/completion"
	purchaseRepo "github.com/muhammadheryan/course-platform/repository/purchase"
	redisRepo "github.com/muhammadheryan/course-platform/repository/redis"
	txRepo "github.com/muhammadheryan/course-platform/repository/tx"
	userRepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/thirdparty/rabbitmq"
	"github.com/muhammadheryan/course-platform/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/transport"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
)

// @title COURSE PLATFORM API
// @version 1.0
// @description Course platform admin API documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	PurchaseRepo := purchaseRepo.NewPurchaseRepository(db)
	CompletionRepo := completionRepo.NewCompletionRepository(db)
	AdminRepo := adminRepo.NewAdminRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// The notifier is shared between the HTTP side and the bot; it stays
	// unavailable until the bot attaches its handle.
	notifier := telegram.NewBotNotifier()

	// RabbitMQ carries delayed subscription-expiry events. The platform
	// stays functional without it: expiry remains a query-time predicate.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq publisher unavailable, expiry events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, PurchaseRepo, notifier)
	if err != nil {
		logger.Warn("rabbitmq consumer unavailable, expiry notifications disabled", zap.Error(err))
	} else {
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Warn("rabbitmq consumer failed to start", zap.Error(err))
		}
	}

	// Initialize application layers
	RegistrationApp := registrationapp.NewRegistrationApp(UserRepo)
	CatalogApp := catalogapp.NewCatalogApp(TxRepo, CatalogRepo)
	PurchaseApp := purchaseapp.NewPurchaseApp(cfg, PurchaseRepo, UserRepo, CatalogApp.Get, notifier, publisher)
	CompletionApp := completionapp.NewCompletionApp(CompletionRepo, UserRepo, notifier)
	AdminApp := adminapp.NewAdminApp(cfg, AdminRepo, RedisRepo, UserRepo, CatalogRepo, PurchaseRepo)
	BroadcastApp := broadcastapp.NewBroadcastApp(cfg, UserRepo, RedisRepo, notifier)

	// Start the bot alongside the HTTP server. A missing token keeps the
	// admin panel usable; sends report unavailable until a token is set.
	if cfg.Telegram.BotToken != "" {
		botHandler := bot.NewHandler(cfg, notifier, RegistrationApp, CatalogApp, PurchaseApp, CompletionApp, UserRepo)
		go func() {
			if err := botHandler.Run(ctx); err != nil && err != context.Canceled {
				logger.Error("bot stopped", zap.Error(err))
			}
		}()
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN is not set, bot disabled")
	}

	httpTransport := transport.NewTransport(cfg, AdminApp, CatalogApp, PurchaseApp, CompletionApp, BroadcastApp, UserRepo, notifier)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

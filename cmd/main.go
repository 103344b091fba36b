package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	cartapp "github.com/heolazz/aerotech/application/cart"
	catalogapp "github.com/heolazz/aerotech/application/catalog"
	configuratorapp "github.com/heolazz/aerotech/application/configurator"
	orderapp "github.com/heolazz/aerotech/application/order"
	"github.com/heolazz/aerotech/application/orderfeed"
	userapp "github.com/heolazz/aerotech/application/user"
	"github.com/heolazz/aerotech/cmd/config"
	redisclient "github.com/heolazz/aerotech/cmd/redis"
	cartRepo "github.com/heolazz/aerotech/repository/cart"
	droneRepo "github.com/heolazz/aerotech/repository/drone"
	orderRepo "github.com/heolazz/aerotech/repository/order"
	redisRepo "github.com/heolazz/aerotech/repository/redis"
	userRepo "github.com/heolazz/aerotech/repository/user"
	"github.com/heolazz/aerotech/thirdparty/rabbitmq"
	"github.com/heolazz/aerotech/transport"
	"github.com/heolazz/aerotech/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title AeroTech Storefront API
// @version 1.0
// @description Drone storefront API: catalog, cart, configurator, orders and admin back-office
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

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// RabbitMQ carries order change notifications for the admin feed.
	// The storefront keeps serving without it.
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq publisher, order events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	consumer, err := rabbitmq.NewConsumer(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq consumer, live feed disabled", zap.Error(err))
		consumer = nil
	} else {
		defer consumer.Close()
	}

	// Initialize repositories
	DroneRepo := droneRepo.NewDroneRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	CartRepo := cartRepo.NewCartRepository()

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(DroneRepo)
	CartApp := cartapp.NewCartApp(cfg, CartRepo, DroneRepo)
	ConfiguratorApp := configuratorapp.NewConfiguratorApp(cfg)
	OrderApp := orderapp.NewOrderApp(cfg, OrderRepo, CartRepo, ConfiguratorApp, publisher)
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)

	// keep a nil interface when rabbitmq is down so the feed skips Start
	var orderEvents orderfeed.EventSource
	if consumer != nil {
		orderEvents = consumer
	}

	feed := orderfeed.NewFeed(OrderRepo, orderEvents)
	feedCtx, feedCancel := context.WithCancel(context.Background())
	defer feedCancel()
	if err := feed.Start(feedCtx); err != nil {
		logger.Warn("err start order feed", zap.Error(err))
	}

	httpTransport := transport.NewTransport(CatalogApp, CartApp, OrderApp, ConfiguratorApp, UserApp, feed)

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

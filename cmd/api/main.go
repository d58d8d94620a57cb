package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	arrivalapp "github.com/muhammadheryan/inventory-management/application/arrival"
	productapp "github.com/muhammadheryan/inventory-management/application/product"
	stockapp "github.com/muhammadheryan/inventory-management/application/stock"
	"github.com/muhammadheryan/inventory-management/cmd/config"
	_ "github.com/muhammadheryan/inventory-management/docs"
	"github.com/muhammadheryan/inventory-management/migration"
	arrivalRepo "github.com/muhammadheryan/inventory-management/repository/arrival"
	productRepo "github.com/muhammadheryan/inventory-management/repository/product"
	stockRepo "github.com/muhammadheryan/inventory-management/repository/stock"
	"github.com/muhammadheryan/inventory-management/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-management/transport"
	"github.com/muhammadheryan/inventory-management/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-management/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title INVENTORY MANAGEMENT API
// @version 1.0
// @description Products, stock receipts, inventory and sales
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.Metrics.ServiceName+"-api"); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migration.RunMigrations(context.Background(), db.DB); err != nil {
			logger.Fatal("err run migrations", zap.Error(err))
		}
		logger.Info("migrations applied")
	}

	// Stock receipt events are optional; a nil publisher turns them off
	var publisher arrivalapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	ArrivalRepo := arrivalRepo.NewArrivalRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)

	// Initialize application layers
	ProductApp := productapp.NewProductApp(ProductRepo)
	ArrivalApp := arrivalapp.NewArrivalApp(ArrivalRepo, publisher)
	StockApp := stockapp.NewStockApp(StockRepo)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewDBStatsCollector(db.DB, cfg.Database.Name))
	metrics := transport.NewHTTPMetrics(cfg.Metrics.ServiceName+"-api", registry)

	httpTransport := transport.NewTransport(ProductApp, ArrivalApp, StockApp, metrics)

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

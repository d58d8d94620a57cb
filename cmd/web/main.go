package main

import (
	"net/http"

	"github.com/muhammadheryan/inventory-management/cmd/config"
	"github.com/muhammadheryan/inventory-management/thirdparty/inventoryapi"
	"github.com/muhammadheryan/inventory-management/transport"
	"github.com/muhammadheryan/inventory-management/transport/web"
	"github.com/muhammadheryan/inventory-management/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-management/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.Metrics.ServiceName+"-web"); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting web client", zap.String("env", cfg.Environment), zap.String("api", cfg.Web.APIBaseURL))

	// Every page is backed by the API service; the web tier has no store
	client := inventoryapi.NewClient(cfg.Web.APIBaseURL, cfg.Web.APITimeout)
	ProductService := inventoryapi.NewProductService(client)
	ArrivalService := inventoryapi.NewArrivalService(client)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := transport.NewHTTPMetrics(cfg.Metrics.ServiceName+"-web", registry)

	server := &http.Server{
		Addr:         ":" + cfg.Web.Port,
		Handler:      web.NewWebTransport(ProductService, ArrivalService, metrics),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Web.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

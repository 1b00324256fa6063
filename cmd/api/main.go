package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pinklegion/stand/internal/client"
	clientStore "github.com/pinklegion/stand/internal/client/store"
	"github.com/pinklegion/stand/internal/config"
	"github.com/pinklegion/stand/internal/contract"
	contractStore "github.com/pinklegion/stand/internal/contract/store"
	"github.com/pinklegion/stand/internal/database"
	"github.com/pinklegion/stand/internal/document"
	documentStore "github.com/pinklegion/stand/internal/document/store"
	standHttp "github.com/pinklegion/stand/internal/http"
	clientHandler "github.com/pinklegion/stand/internal/http/client"
	contractHandler "github.com/pinklegion/stand/internal/http/contract"
	paymentHandler "github.com/pinklegion/stand/internal/http/payment"
	reportHandler "github.com/pinklegion/stand/internal/http/report"
	validationHandler "github.com/pinklegion/stand/internal/http/validation"
	vehicleHandler "github.com/pinklegion/stand/internal/http/vehicle"
	"github.com/pinklegion/stand/internal/report"
	reportStore "github.com/pinklegion/stand/internal/report/store"
	"github.com/pinklegion/stand/internal/schedule"
	scheduleStore "github.com/pinklegion/stand/internal/schedule/store"
	"github.com/pinklegion/stand/internal/vehicle"
	vehicleStore "github.com/pinklegion/stand/internal/vehicle/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns, cfg.DB.ConnMaxLifetime)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	defer redisClient.Close()

	seller := document.Seller{
		Name:    cfg.Seller.Name,
		NIF:     cfg.Seller.NIF,
		Address: cfg.Seller.Address,
		IBAN:    cfg.Seller.IBAN,
	}

	var (
		clientService   = client.NewService(clientStore.New(db))
		vehicleService  = vehicle.NewService(vehicleStore.New(db))
		scheduleService = schedule.NewService(scheduleStore.New(db))
		contractService = contract.NewService(contractStore.New(db), scheduleService, vehicleService)
		documentService = document.NewService(
			seller,
			document.NewHTTPRenderer(cfg.PDF.BaseURL),
			document.NewHTTPBlobStore(cfg.Storage.BaseURL, cfg.Storage.Token),
			documentStore.New(db),
		)
		reportService = report.NewService(
			reportStore.New(db),
			report.NewRedisCache(redisClient),
			cfg.Redis.ReportTTL,
		)
	)

	var (
		clientH     = clientHandler.NewHandler(clientService)
		vehicleH    = vehicleHandler.NewHandler(vehicleService)
		contractH   = contractHandler.NewHandler(contractService, clientService, vehicleService, scheduleService, documentService)
		paymentH    = paymentHandler.NewHandler(scheduleService)
		reportH     = reportHandler.NewHandler(reportService)
		validationH = validationHandler.NewHandler()
	)

	router := standHttp.New(clientH, vehicleH, contractH, paymentH, reportH, validationH, cfg.CORS.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

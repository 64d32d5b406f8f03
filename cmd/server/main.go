package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "gasdepot-backend/internal/api/http"
	"gasdepot-backend/internal/config"
	"gasdepot-backend/internal/logger"
	"gasdepot-backend/internal/repository/postgres"
	"gasdepot-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GasDepot backend...", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	pricingSvc := service.NewPricingService(store.PriceRepository, store.CylinderRepository)
	cylinderSvc := service.NewCylinderService(store.CylinderRepository, store.TransactionRepository, store.RefillStationRepository)
	ledgerSvc := service.NewLedgerService(store.TransactionRepository, store.CylinderRepository, store.MemberRepository, store.RefillStationRepository, cfg.Rules.OverdueTierDays)
	memberSvc := service.NewMemberService(store.MemberRepository, store.CylinderRepository, store.TransactionRepository, cfg.Rules)
	rentalSvc := service.NewRentalService(store.CylinderRepository, store.MemberRepository, store.TransactionRepository)
	stationSvc := service.NewStationService(store.RefillStationRepository)

	handlers := &httpapi.Handlers{
		Cylinder: httpapi.NewCylinderHandler(cylinderSvc),
		Member:   httpapi.NewMemberHandler(memberSvc, ledgerSvc),
		Rental:   httpapi.NewRentalHandler(rentalSvc, pricingSvc),
		Ledger:   httpapi.NewLedgerHandler(ledgerSvc),
		Price:    httpapi.NewPriceHandler(store.PriceRepository),
		Station:  httpapi.NewStationHandler(stationSvc),
	}

	router := httpapi.NewRouter(handlers)

	logger.Info("Listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

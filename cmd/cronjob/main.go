package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"gasdepot-backend/internal/config"
	"gasdepot-backend/internal/jobs"
	"gasdepot-backend/internal/logger"
	"gasdepot-backend/internal/repository/postgres"
	"gasdepot-backend/internal/scheduler"
	"gasdepot-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g. 'long-holds', 'low-stock', 'refund-ready', 'all-nightly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GasDepot cronjob runner...", "log_level", cfg.Log.Level)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)

	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	ledgerSvc := service.NewLedgerService(store.TransactionRepository, store.CylinderRepository, store.MemberRepository, store.RefillStationRepository, cfg.Rules.OverdueTierDays)
	cylinderSvc := service.NewCylinderService(store.CylinderRepository, store.TransactionRepository, store.RefillStationRepository)
	memberSvc := service.NewMemberService(store.MemberRepository, store.CylinderRepository, store.TransactionRepository, cfg.Rules)

	runner := jobs.NewJobRunner(&jobs.Services{
		Email:    emailSvc,
		Ledger:   ledgerSvc,
		Cylinder: cylinderSvc,
		Member:   memberSvc,
	}, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "long-holds":
			runner.ReportLongHolds()
		case "low-stock":
			runner.ReportLowStock()
		case "refund-ready":
			runner.ReportRefundReady()
		case "all-nightly":
			runner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(runner)
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down cronjob runner")
}

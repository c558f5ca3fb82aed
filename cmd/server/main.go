package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/currency"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/infrastructure/repository/memory"
	"github.com/grn-engineering/smartvend/backend/internal/infrastructure/repository/postgres"
	"github.com/grn-engineering/smartvend/backend/internal/interfaces/http"
	"github.com/grn-engineering/smartvend/backend/internal/interfaces/http/handlers"
	"github.com/grn-engineering/smartvend/backend/internal/interfaces/http/middleware"
	"github.com/grn-engineering/smartvend/backend/internal/pkg/config"
	"github.com/grn-engineering/smartvend/backend/internal/pkg/logger"
	"github.com/grn-engineering/smartvend/backend/internal/session"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// repositories bundles the persistence layer behind one assembly point
// so the data backend can be swapped by configuration.
type repositories struct {
	users        domain.UserRepository
	machines     domain.MachineRepository
	products     domain.ProductRepository
	transactions domain.TransactionRepository
	alerts       domain.AlertRepository
	analytics    domain.AnalyticsRepository
}

func main() {
	// Initialize logger
	logger.Init("info", true)
	log := logger.Get()

	log.Info().Msg("Starting SmartVend360 Backend...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Select data backend
	var repos *repositories
	switch cfg.Data.Backend {
	case "postgres":
		dbPool, err := connectDB(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer dbPool.Close()

		log.Info().Msg("Connected to PostgreSQL")

		runMigrations(dbPool, log)
		repos = postgresRepositories(dbPool)
	default:
		log.Info().Msg("Using in-memory repositories with demo fleet data")
		repos = memoryRepositories()
	}

	// Settings store holds the operator's language, theme and country
	settingsStore := settings.NewStore()

	// Session store with file persistence across restarts
	var verifier session.Verifier = session.DemoVerifier{}
	if cfg.Auth.Verifier == "bcrypt" {
		verifier = application.BcryptVerifier{}
	}
	sessionStore := session.NewStore(
		repos.users,
		settingsStore,
		session.NewFilePersistence(cfg.Auth.SessionFile),
		verifier,
		time.Duration(cfg.Auth.LoginDelayMillis)*time.Millisecond,
	)
	sessionStore.Restore()

	// Currency formatter shared by the presentation services
	formatter := currency.NewFormatter(cfg.Currency.INRToJPY)

	// Initialize services
	authService := application.NewAuthService(
		sessionStore,
		repos.users,
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.ExpirationHours,
	)
	fleetService := application.NewFleetService(repos.machines, repos.alerts, formatter)
	inventoryService := application.NewInventoryService(repos.machines, repos.products, formatter)
	analyticsService := application.NewAnalyticsService(repos.analytics, repos.machines, repos.transactions, formatter)
	maintenanceService := application.NewMaintenanceService(repos.alerts, repos.machines)
	userService := application.NewUserService(repos.users)

	// Live counter refreshes the dashboard activity figure in the
	// background for the currently selected country
	liveCtx, stopLive := context.WithCancel(context.Background())
	defer stopLive()
	liveCounter := application.NewLiveCounter(fleetService, settingsStore.SelectedCountry, 3*time.Second)
	go liveCounter.Start(liveCtx)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, settingsStore)
	dashboardHandler := handlers.NewDashboardHandler(fleetService, liveCounter, settingsStore)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, settingsStore)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, settingsStore)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, settingsStore)
	userHandler := handlers.NewUserHandler(userService)
	settingsHandler := handlers.NewSettingsHandler(settingsStore)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Setup router
	router := http.NewRouter(
		authHandler,
		dashboardHandler,
		inventoryHandler,
		analyticsHandler,
		maintenanceHandler,
		userHandler,
		settingsHandler,
		authMiddleware,
		&cfg.Server,
	)
	router.SetupRoutes()

	// Start server in goroutine
	serverAddr := cfg.Server.Addr()
	go func() {
		log.Info().Str("address", serverAddr).Msg("Starting HTTP server")
		if err := router.Start(serverAddr); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stopLive()

	if err := router.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}

	log.Info().Msg("Server stopped")
}

func memoryRepositories() *repositories {
	return &repositories{
		users:        memory.NewUserRepository(memory.SeedUsers()),
		machines:     memory.NewMachineRepository(memory.SeedMachines()),
		products:     memory.NewProductRepository(memory.SeedProducts()),
		transactions: memory.NewTransactionRepository(memory.SeedTransactions()),
		alerts:       memory.NewAlertRepository(memory.SeedAlerts()),
		analytics:    memory.NewAnalyticsRepository(memory.SeedDailyRevenue(), memory.SeedPaymentMethods()),
	}
}

func postgresRepositories(dbPool *pgxpool.Pool) *repositories {
	return &repositories{
		users:        postgres.NewUserRepository(dbPool),
		machines:     postgres.NewMachineRepository(dbPool),
		products:     postgres.NewProductRepository(dbPool),
		transactions: postgres.NewTransactionRepository(dbPool),
		alerts:       postgres.NewAlertRepository(dbPool),
		analytics:    postgres.NewAnalyticsRepository(dbPool),
	}
}

func connectDB(cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return pool, nil
}

func runMigrations(dbPool *pgxpool.Pool, log *zerolog.Logger) {
	log.Info().Msg("Running database migrations...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Check if tables exist by querying information_schema
	var tableCount int
	err := dbPool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name IN ('users', 'machines', 'products', 'transactions', 'maintenance_alerts', 'daily_revenue', 'payment_methods')
	`).Scan(&tableCount)

	if err != nil {
		log.Warn().Err(err).Msg("Failed to check existing tables, will attempt to create schema")
		tableCount = 0
	}

	if tableCount >= 7 {
		log.Info().Msg("Database schema already exists")
		return
	}

	log.Info().Msg("Creating database schema...")

	migrationSQL := `
		-- Users table
		CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL DEFAULT '',
			role VARCHAR(50) NOT NULL,
			country VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			last_login TIMESTAMP WITH TIME ZONE
		);

		CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

		-- Machines table
		CREATE TABLE IF NOT EXISTS machines (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			city VARCHAR(100) NOT NULL,
			country VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL,
			revenue INTEGER NOT NULL DEFAULT 0,
			transactions INTEGER NOT NULL DEFAULT 0,
			uptime DOUBLE PRECISION NOT NULL DEFAULT 0,
			stock_level INTEGER NOT NULL DEFAULT 0,
			last_maintenance VARCHAR(20) NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_machines_country ON machines(country);
		CREATE INDEX IF NOT EXISTS idx_machines_status ON machines(status);

		-- Products table
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			price_inr INTEGER NOT NULL,
			price_jpy INTEGER NOT NULL,
			popularity INTEGER NOT NULL DEFAULT 0,
			stock INTEGER NOT NULL DEFAULT 0
		);

		-- Transactions table
		CREATE TABLE IF NOT EXISTS transactions (
			id VARCHAR(64) PRIMARY KEY,
			machine_id VARCHAR(64) REFERENCES machines(id) ON DELETE CASCADE,
			product_id VARCHAR(64) REFERENCES products(id),
			timestamp TIMESTAMP WITH TIME ZONE NOT NULL,
			amount INTEGER NOT NULL,
			currency VARCHAR(10) NOT NULL,
			payment_method VARCHAR(50) NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_transactions_machine_id ON transactions(machine_id);

		-- Maintenance alerts table
		CREATE TABLE IF NOT EXISTS maintenance_alerts (
			id VARCHAR(64) PRIMARY KEY,
			machine_id VARCHAR(64) REFERENCES machines(id) ON DELETE CASCADE,
			type VARCHAR(100) NOT NULL,
			priority VARCHAR(20) NOT NULL,
			description TEXT NOT NULL,
			assigned_to VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_maintenance_alerts_status ON maintenance_alerts(status);

		-- Aggregate analytics tables
		CREATE TABLE IF NOT EXISTS daily_revenue (
			date VARCHAR(10) NOT NULL,
			country VARCHAR(50) NOT NULL,
			revenue INTEGER NOT NULL,
			PRIMARY KEY (date, country)
		);

		CREATE TABLE IF NOT EXISTS payment_methods (
			country VARCHAR(50) NOT NULL,
			method VARCHAR(50) NOT NULL,
			share INTEGER NOT NULL,
			PRIMARY KEY (country, method)
		);
	`

	_, err = dbPool.Exec(ctx, migrationSQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	log.Info().Msg("Database schema created successfully")
}

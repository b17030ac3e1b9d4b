package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Crashito0982/PruebaTecnica/internal"
	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	authPostgres "github.com/Crashito0982/PruebaTecnica/internal/auth/postgres"
	"github.com/Crashito0982/PruebaTecnica/internal/category"
	categoryPostgres "github.com/Crashito0982/PruebaTecnica/internal/category/postgres"
	"github.com/Crashito0982/PruebaTecnica/internal/expense"
	expensePostgres "github.com/Crashito0982/PruebaTecnica/internal/expense/postgres"
	"github.com/Crashito0982/PruebaTecnica/internal/transport"
	"github.com/Crashito0982/PruebaTecnica/internal/transport/rest"
	"github.com/Crashito0982/PruebaTecnica/internal/user"
	userPostgres "github.com/Crashito0982/PruebaTecnica/internal/user/postgres"
	"github.com/Crashito0982/PruebaTecnica/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				deps.Logger.Error("Database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	base := transport.NewBaseHandler(deps.Logger)

	authRepo := authPostgres.NewAuthRepository(deps.DB)
	authMiddleware := auth.NewMiddleware(authRepo, deps.Logger)

	categoryRepo := categoryPostgres.NewCategoryRepository(deps.DB)
	categoryService := category.NewService(categoryRepo, deps.Logger)
	categoryHandler := category.NewHandler(base, categoryService)

	expenseRepo := expensePostgres.NewExpenseRepository(deps.DB)
	expenseService := expense.NewService(expenseRepo, categoryRepo, deps.Logger)
	expenseHandler := expense.NewHandler(base, expenseService)

	userRepo := userPostgres.NewUserRepository(deps.DB)
	userService := user.NewService(userRepo, deps.Logger)
	userHandler := user.NewHandler(base, userService)

	sqlDB, err := deps.DB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unwrap sql.DB: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, sqlDB, authMiddleware, categoryHandler, expenseHandler, userHandler, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the database connection. TranslateError makes GORM surface
// unique-index violations as gorm.ErrDuplicatedKey, which the repositories
// rely on to classify race-lost writes.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

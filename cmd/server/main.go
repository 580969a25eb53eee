package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jpereira/stockfolio-backend/internal/adapter/brapi"
	"github.com/jpereira/stockfolio-backend/internal/adapter/httpapi"
	"github.com/jpereira/stockfolio-backend/internal/adapter/repository/postgres"
	"github.com/jpereira/stockfolio-backend/internal/config"
	"github.com/jpereira/stockfolio-backend/internal/usecase/account"
	"github.com/jpereira/stockfolio-backend/internal/usecase/holding"
	"github.com/jpereira/stockfolio-backend/internal/usecase/stock"
	"github.com/jpereira/stockfolio-backend/internal/usecase/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// 1. Setup Database
	db, err := postgres.NewDB(cfg.Database.ConnString())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// 2. Initialize Repositories (Postgres)
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	stockRepo := postgres.NewStockRepository(db)
	holdingRepo := postgres.NewHoldingRepository(db)

	// 3. Initialize Quote Provider and Services (Use Cases)
	quotes := brapi.NewClient(cfg.Brapi.BaseURL, cfg.Brapi.Token, cfg.Brapi.Timeout, logger)

	userService := user.NewService(userRepo)
	accountService := account.NewService(userRepo, accountRepo)
	stockService := stock.NewService(stockRepo)
	holdingService := holding.NewService(accountRepo, stockRepo, holdingRepo, quotes, cfg.Brapi.Timeout)

	// 4. Start HTTP Server
	api := httpapi.NewServer(userService, accountService, stockService, holdingService, logger)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully drains the server
func waitForShutdown(srv *http.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown did not complete cleanly", zap.Error(err))
	}
	logger.Info("http server stopped")
}

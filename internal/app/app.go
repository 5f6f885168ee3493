package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/triage-server/api/v1"
	"github.com/godilite/triage-server/internal/chat"
	"github.com/godilite/triage-server/internal/config"
	handler "github.com/godilite/triage-server/internal/grpc"
	"github.com/godilite/triage-server/internal/repository"
	"github.com/godilite/triage-server/internal/service"
	"github.com/godilite/triage-server/internal/triage"
	"github.com/godilite/triage-server/pkg/cache"
	dbbuilder "github.com/godilite/triage-server/pkg/database"
	grpcsrv "github.com/godilite/triage-server/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	ticketRepo := repository.NewTicketRepository(dbPool)
	if err := ticketRepo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	sequencer := triage.NewSequencer()
	triageService := service.NewTriageService(ticketRepo, sequencer, logger, cfg.WorkerCount)
	reviewService := service.NewReviewService(ticketRepo, logger)

	var chatService handler.ChatService
	if cfg.AnthropicAPIKey != "" {
		cs, err := chat.NewService(cfg.AnthropicAPIKey, cfg.ChatModel, logger)
		if err != nil {
			return nil, fmt.Errorf("chat init failed: %w", err)
		}
		chatService = cs
	} else {
		logger.Info("Chat passthrough disabled: no API key configured")
	}

	grpcHandlers := handler.NewGRPCHandlers(triageService, reviewService, chatService, cacheClient, logger, 10*time.Minute, cfg.TicketExportPath)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterFeedbackTriageServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("grpc shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")
	_ = a.logger.Sync()
	return nil
}

package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"franchises/internal/config"
	"franchises/internal/franchise"
	"franchises/internal/franchise/repository"
	"franchises/internal/infrastructure/logger"
	"franchises/internal/infrastructure/mysql"
	"franchises/internal/infrastructure/redis"
	"franchises/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	db, err := mysql.NewConnection(ctx, cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if cfg.Database.AutoMigrate {
		if err := repository.NewMySQLRepository(db).EnsureSchema(ctx); err != nil {
			zapLogger.Fatal("ensuring schema", zap.Error(err))
		}
	}

	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Warn("redis unavailable, running without cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			zapLogger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		}
	}

	module := franchise.NewModule(db, redisClient, cfg.Redis, zapLogger)
	router := server.NewRouter(module, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		zapLogger.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLogger.Fatal("server stopped with error", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"cuaderno/internal/config"
	httpGateway "cuaderno/internal/gateways/http"
	"cuaderno/internal/identity/clerk"
	"cuaderno/internal/plan"
	memoryRepository "cuaderno/internal/repository/subscription/memory"
	pgRepository "cuaderno/internal/repository/subscription/postgres"
	redisRepository "cuaderno/internal/repository/subscription/redis"
	usecaseInternal "cuaderno/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := setupLogger(cfg.Env)

	log.Info("starting cuaderno api", slog.String("env", cfg.Env), slog.String("version", cfg.Service.Version))
	log.Debug("debug messages are enabled")

	sr, closeStore, err := setupStorage(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init storage", slog.String("driver", cfg.Storage.Driver), slog.Any("err", err))
		os.Exit(1)
	}
	defer closeStore()

	opts := []usecaseInternal.Option{usecaseInternal.WithPortalURL(cfg.Billing.PortalURL)}
	if cfg.Clerk.SecretKey != "" {
		opts = append(opts, usecaseInternal.WithIdentityProvider(clerk.New(cfg.Clerk.APIURL, cfg.Clerk.SecretKey)))
		log.Debug("clerk metadata sync enabled")
	}

	plans, err := plan.Default()
	if err != nil {
		log.Error("failed to load plan catalog", slog.Any("err", err))
		os.Exit(1)
	}

	useCases := httpGateway.UseCases{
		Sub:   usecaseInternal.NewSubscription(sr, opts...),
		Plans: plans,
	}

	if cfg.Clerk.JWTPublicKey != "" {
		verifier, err := clerk.NewVerifier(cfg.Clerk.JWTPublicKey, cfg.Clerk.AuthorizedParties)
		if err != nil {
			log.Error("failed to init session verifier", slog.Any("err", err))
			os.Exit(1)
		}
		useCases.Sessions = verifier
	} else {
		log.Warn("session verification disabled, user ids are taken from requests")
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithLogger(log),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server", slog.String("address", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)))
	if err := server.Run(ctx); err != nil {
		log.Error("server stopped", slog.Any("err", err))
		return
	}
}

func setupStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (usecaseInternal.SubscriptionRepository, func(), error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "", "memory":
		log.Debug("init memory storage")
		return memoryRepository.NewSubRepository(), func() {}, nil

	case "postgres":
		databaseURL := cfg.Pg.URL()
		if err := pgRepository.Migrate(databaseURL); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		log.Debug("init database")
		return pgRepository.NewSubRepository(pool), pool.Close, nil

	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		repo := redisRepository.NewSubRepository(client, cfg.Redis.KeyPrefix)
		if err := repo.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		log.Debug("init redis storage")
		return repo, func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}

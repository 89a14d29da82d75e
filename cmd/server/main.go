package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/robuxroyale/internal/common/clock"
	"github.com/KirkDiggler/robuxroyale/internal/common/uuid"
	"github.com/KirkDiggler/robuxroyale/internal/config"
	"github.com/KirkDiggler/robuxroyale/internal/handlers/api"
	"github.com/KirkDiggler/robuxroyale/internal/handlers/discord"
	"github.com/KirkDiggler/robuxroyale/internal/logger"
	"github.com/KirkDiggler/robuxroyale/internal/random"
	"github.com/KirkDiggler/robuxroyale/internal/repositories/history"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
	"github.com/KirkDiggler/robuxroyale/internal/services/messaging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "robuxroyale: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{Env: cfg.Env, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	historyRepo, closeRepo, err := newHistoryRepo(cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	roller := random.New(&random.Config{})

	casinoSvc, err := casino.New(&casino.Config{
		HistoryRepo:   historyRepo,
		Random:        roller,
		Clock:         &clock.DefaultClock{},
		UUID:          uuid.New(),
		Logger:        log,
		SessionTTL:    cfg.SessionTTL,
		RequireTerms:  cfg.RequireTerms,
		TermsDelay:    cfg.TermsDelay,
		RedirectURL:   cfg.RedirectURL,
		MinBet:        cfg.MinBet,
		MaxBet:        cfg.MaxBet,
		HistoryLimit:  cfg.HistoryLimit,
		BoostDuration: cfg.BoostDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to create casino service: %w", err)
	}
	defer casinoSvc.Close()

	handler, err := api.New(&api.Config{
		CasinoService:  casinoSvc,
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return fmt.Errorf("failed to create http handler: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", zap.String("address", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.DiscordToken == "" {
		log.Info("DISCORD_TOKEN not set, discord bot disabled")
	} else {
		messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Random: roller})
		if err != nil {
			return fmt.Errorf("failed to create messaging service: %w", err)
		}

		bot, err := discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.ApplicationID,
			GuildID:          cfg.GuildID,
			CasinoService:    casinoSvc,
			MessagingService: messagingSvc,
			Logger:           log,
		})
		if err != nil {
			return fmt.Errorf("failed to create discord bot: %w", err)
		}
		if err := bot.Start(); err != nil {
			return fmt.Errorf("failed to start discord bot: %w", err)
		}

		g.Go(func() error {
			<-gctx.Done()
			log.Info("shutting down discord bot")
			return bot.Stop()
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("robuxroyale has been shut down")
	return nil
}

// newHistoryRepo uses Redis when REDIS_ADDR is set and memory otherwise
func newHistoryRepo(cfg *config.Config, log *zap.Logger) (history.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, keeping history in memory")
		return history.NewMemory(&history.MemoryConfig{Cap: cfg.HistoryCap}), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := history.NewRedis(&history.Config{
		RedisClient: redisClient,
		Cap:         cfg.HistoryCap,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create history repository: %w", err)
	}

	log.Info("history stored in redis", zap.String("address", cfg.RedisAddr))
	return repo, func() {
		if err := redisClient.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}, nil
}

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

	"github.com/KirkDiggler/stumped/internal/common/clock"
	"github.com/KirkDiggler/stumped/internal/common/locker"
	"github.com/KirkDiggler/stumped/internal/common/logger"
	"github.com/KirkDiggler/stumped/internal/common/random"
	"github.com/KirkDiggler/stumped/internal/common/roomcode"
	"github.com/KirkDiggler/stumped/internal/common/uuid"
	"github.com/KirkDiggler/stumped/internal/config"
	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/handlers/discord"
	"github.com/KirkDiggler/stumped/internal/handlers/web"
	"github.com/KirkDiggler/stumped/internal/repositories/exchange"
	"github.com/KirkDiggler/stumped/internal/repositories/player"
	"github.com/KirkDiggler/stumped/internal/repositories/results"
	"github.com/KirkDiggler/stumped/internal/repositories/room"
	"github.com/KirkDiggler/stumped/internal/services/archive"
	gameService "github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/KirkDiggler/stumped/internal/services/messaging"
	"github.com/KirkDiggler/stumped/internal/services/monitor"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const releaseVersion = "0.1.0"

func main() {
	// A missing .env is fine; the environment and flags still apply
	_ = godotenv.Load()

	cobra.CheckErr(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stumped",
		Short:         "Guess the secret team, one yes or no question at a time.",
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.CompletionOptions.HiddenDefaultCmd = true
	root.AddCommand(newServeCmd())

	return root
}

func newServeCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game server",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ApplyEnv(cmd.Flags()); err != nil {
				return err
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	roomRepo, err := room.NewRedis(&room.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create room repository: %w", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	exchangeRepo, err := exchange.NewRedis(&exchange.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create exchange repository: %w", err)
	}

	ids := uuid.New()

	roomLocker, err := locker.NewRedis(&locker.RedisConfig{
		RedisClient: redisClient,
		UUID:        ids,
		TTL:         cfg.LockTTL,
		Wait:        cfg.LockWait,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to create room locker: %w", err)
	}

	bus, err := events.NewRedis(&events.Config{
		RedisClient: redisClient,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}

	picker := random.New(&random.Config{})
	systemClock := &clock.DefaultClock{}

	game, err := gameService.New(&gameService.Config{
		RoomRepo:      roomRepo,
		PlayerRepo:    playerRepo,
		ExchangeRepo:  exchangeRepo,
		Locker:        roomLocker,
		Publisher:     bus,
		Picker:        picker,
		CodeGenerator: roomcode.New(picker),
		Clock:         systemClock,
		UUIDGenerator: ids,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	idle, err := monitor.New(&monitor.Config{
		Clock:      systemClock,
		Evictor:    game,
		Subscriber: bus,
		Logger:     log,
		Timeout:    cfg.IdleTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create inactivity monitor: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return idle.Run(ctx)
	})

	var archiveSvc archive.Service
	if cfg.ArchiveEnabled() {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		defer pool.Close()

		if err := results.Migrate(ctx, pool); err != nil {
			return err
		}

		repo, err := results.NewPostgres(&results.Config{Pool: pool})
		if err != nil {
			return fmt.Errorf("failed to create results repository: %w", err)
		}

		svc, err := archive.New(&archive.Config{
			Standings:  game,
			Repository: repo,
			Subscriber: bus,
			Clock:      systemClock,
			Logger:     log,
		})
		if err != nil {
			return fmt.Errorf("failed to create archive: %w", err)
		}
		archiveSvc = svc

		g.Go(func() error {
			return svc.Run(ctx)
		})
	} else {
		log.Info().Msg("no postgres url, results archive disabled")
	}

	if cfg.DiscordEnabled() {
		copywriter, err := messaging.NewService(&messaging.ServiceConfig{Picker: picker})
		if err != nil {
			return fmt.Errorf("failed to create messaging service: %w", err)
		}

		bot, err := discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.DiscordAppID,
			GuildID:       cfg.DiscordGuildID,
			Game:          game,
			Messaging:     copywriter,
			Logger:        log,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}

		if err := bot.Start(); err != nil {
			return fmt.Errorf("failed to start Discord bot: %w", err)
		}

		g.Go(func() error {
			<-ctx.Done()
			return bot.Stop()
		})
	}

	gin.SetMode(gin.ReleaseMode)

	handler, err := web.New(&web.Config{
		Game:           game,
		Monitor:        idle,
		Subscriber:     bus,
		Archive:        archiveSvc,
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
		PublicURL:      cfg.PublicURL,
		RateLimit:      rate.Limit(cfg.RateLimit),
		RateBurst:      cfg.RateBurst,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return shutdown(server, cfg.ShutdownTimeout, log)
	})

	return g.Wait()
}

func shutdown(server *http.Server, timeout time.Duration, log zerolog.Logger) error {
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"propbets-service/internal/app"
	"propbets-service/internal/config"
	"propbets-service/internal/formstate"
	"propbets-service/internal/infra/jsonfile"
	"propbets-service/internal/infra/memory"
	"propbets-service/internal/infra/postgres"
	redisinfra "propbets-service/internal/infra/redis"
	"propbets-service/internal/seed"
	transport "propbets-service/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the picks server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	draftTTL := config.TTLDuration(cfg.Redis.TTL, 24*time.Hour)

	var guard app.SubmissionGuard = memory.NewSubmissionGuard()
	var drafts formstate.DraftStore = memory.NewDraftStore()
	if redisClient != nil {
		guard = redisinfra.NewSubmissionGuard(redisClient, 30*time.Second)
		drafts = redisinfra.NewDraftStore(redisClient, draftTTL)
	}

	key := app.DefaultAnswerKey()
	if cfg.Answers.Path != "" {
		if key, err = app.LoadAnswerKey(cfg.Answers.Path); err != nil {
			return err
		}
	}

	leaderboardTTL := config.TTLDuration(cfg.Leaderboard.TTL, 30*time.Second)
	service := app.NewPickService(store, guard, key, leaderboardTTL)
	handler := transport.NewHandler(service, drafts)

	mux := http.NewServeMux()
	handler.Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting propbets service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildStore picks the persistence backend from config. The JSON file is
// the default; postgres needs a configured URL and migrations are applied
// before first use.
func buildStore(ctx context.Context, cfg config.Config) (app.Store, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case "", "jsonfile":
		path := cfg.Store.Path
		if path == "" {
			path = "data/db.json"
		}
		return jsonfile.NewStore(path), noop, nil
	case "postgres":
		if cfg.Postgres.URL == "" {
			return nil, noop, fmt.Errorf("postgres url not configured")
		}
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return nil, noop, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, noop, err
		}
		return postgres.NewStore(pool), pool.Close, nil
	case "memory":
		store := memory.NewStore()
		// Throwaway backend for local demos; seed it so the app is usable.
		if err := store.SeedIfEmpty(ctx, seed.Participants(), seed.Categories(), seed.Questions()); err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

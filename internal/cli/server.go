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

	"din8580-quiz-service/internal/app"
	"din8580-quiz-service/internal/config"
	"din8580-quiz-service/internal/domain"
	filestore "din8580-quiz-service/internal/infra/file"
	"din8580-quiz-service/internal/infra/memory"
	pgstore "din8580-quiz-service/internal/infra/postgres"
	redisstore "din8580-quiz-service/internal/infra/redis"
	transport "din8580-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

// buildService wires the result store and bank repository per config and
// returns the service plus a cleanup for the acquired connections.
func buildService(ctx context.Context, cfg config.Config) (*app.QuizService, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cleanups = append(cleanups, func() { _ = redisClient.Close() })
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		var err error
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, pool.Close)
	}

	bankTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var loader memory.BankLoader = memory.NewDefaultBankLoader()
	if pool != nil {
		loader = pgstore.NewBankLoader(pool)
	}
	var banks app.BankRepository
	if redisClient != nil {
		banks = redisstore.NewBankRepository(redisClient, loader, bankTTL)
	} else {
		banks = memory.NewBankRepository(loader, bankTTL)
	}

	var store app.ResultStore
	switch cfg.Results.Backend {
	case "", "file":
		path := cfg.Results.Path
		if path == "" {
			path = "data/results.json"
		}
		store = filestore.NewResultStore(path)
	case "memory":
		store = memory.NewResultStore()
	case "redis":
		if redisClient == nil {
			cleanup()
			return nil, nil, fmt.Errorf("results backend %q needs redis.addr", cfg.Results.Backend)
		}
		store = redisstore.NewResultStore(redisClient)
	case "postgres":
		if pool == nil {
			cleanup()
			return nil, nil, fmt.Errorf("results backend %q needs postgres.url", cfg.Results.Backend)
		}
		store = pgstore.NewResultStore(pool)
	default:
		cleanup()
		return nil, nil, fmt.Errorf("unknown results backend %q", cfg.Results.Backend)
	}

	bankID := cfg.Quiz.BankID
	if bankID == "" {
		bankID = domain.DefaultBankID
	}

	return app.NewQuizService(store, banks, bankID), cleanup, nil
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	service, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	wsHandler := transport.NewWSHandler(service)

	diagramPath := cfg.Assets.DiagramPath
	if diagramPath == "" {
		diagramPath = "assets/overview.png"
	}
	assetHandler := transport.NewAssetHandler(diagramPath, config.TTLDuration(cfg.Assets.RetryDelay, 30*time.Second))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/assets/overview.png", assetHandler.ServeDiagram)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
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

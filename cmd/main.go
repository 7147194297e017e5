package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	_ "citysim/docs"
	"citysim/internal/cli"
	"citysim/internal/config"
	"citysim/internal/handlers"
	"citysim/internal/logger"
	"citysim/internal/metrics"
	"citysim/internal/repository"
	"citysim/internal/repository/db"
	"citysim/internal/server"
	"citysim/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       CitySim API
// @version                     1.0
// @description                 Turn-based city management simulation: build, set taxes, advance days, save and compare scores.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	var configPath string

	root := &cobra.Command{
		Use:          "citysim",
		Short:        "Turn-based city management simulation",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: configs/config.yml)")

	root.AddCommand(
		newServeCmd(&configPath),
		cli.NewPlayCmd(playEnv(&configPath)),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func sessionOptions(cfg *config.Config) service.SessionOptions {
	return service.SessionOptions{
		City:    cfg.Sim.CityConfig(),
		Sandbox: cfg.Sim.Sandbox,
		Seed:    cfg.Sim.Seed,
	}
}

// playEnv opens the save database for the play commands.
func playEnv(configPath *string) cli.EnvFunc {
	return func(cmd *cobra.Command) (*cli.Env, func(), error) {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, nil, err
		}
		// keep the terminal for the game report
		log := logger.New(logger.ErrorLevel)

		conn, err := db.InitDB(cfg.DB.Path)
		if err != nil {
			return nil, nil, err
		}
		repos := repository.NewRepository(conn)
		env := &cli.Env{
			Saves:      repos.CityRepo,
			Highscores: repos.HighscoreRepo,
			Session:    sessionOptions(cfg),
			Slot:       cfg.Sim.Slot,
			Log:        log,
		}
		return env, func() { _ = conn.Close() }, nil
	}
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API over a single city session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	log := logger.Get(cfg.Log.Level)

	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	var (
		recorder metrics.Recorder
		opts     []handlers.Option
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector()
		if err := collector.Register(reg); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		recorder = collector
		opts = append(opts, handlers.WithMetrics(metrics.Handler(reg)))
	}
	opts = append(opts, handlers.WithRateLimit(cfg.API.RateLimit, cfg.API.Burst))

	// wire dependencies
	repos := repository.NewRepository(conn)
	session := service.NewGameSession(sessionOptions(cfg), recorder, log)
	services := service.NewService(repos, session, service.Options{
		Auth:     service.AuthOptions{SigningKey: cfg.Auth.SigningKey, TokenTTL: cfg.Auth.TokenTTL},
		Autosave: cfg.Sim.Slot,
	}, log)
	apiHandler := handlers.NewHandler(services, log, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resume(ctx, services, cfg.Sim.Slot, log)

	// start simulator (via composed service)
	go services.Simulator.Run(ctx, cfg.Sim.AutoAdvanceEvery)

	srv := &server.Server{}
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http_server_started", "port", cfg.Port, "session_id", session.ID())
		errCh <- srv.Run(cfg.Port, apiHandler.InitRoutes())
	}()

	return waitForShutdown(cancel, srv, errCh, log)
}

// resume loads the configured slot so a restarted server keeps its city.
func resume(ctx context.Context, services *service.Service, slot string, log *logger.Logger) {
	st, err := services.Saves.Load(ctx, slot)
	switch {
	case err == nil:
		log.Infow("session_resumed", "slot", slot, "day", st.City.Day)
	case errors.Is(err, repository.ErrSaveNotFound):
		log.Infow("session_fresh", "slot", slot)
	default:
		log.Warnw("session_resume_failed", "slot", slot, "err", err)
	}
}

// waitForShutdown blocks until a termination signal or a server error, then
// stops background work and drains in-flight requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		log.Infow("shutting down server...")
	case runErr = <-errCh:
		if runErr != nil {
			log.Errorw("http_server_failed", "err", runErr)
		}
	}

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return runErr
}

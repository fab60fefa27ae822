package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/aretw0/tramway/internal/adapters/http"
	"github.com/aretw0/tramway/internal/config"
	"github.com/aretw0/tramway/internal/logging"
	"github.com/aretw0/tramway/internal/metrics"
	"github.com/aretw0/tramway/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/tramway/pkg/adapters/redis"
	"github.com/aretw0/tramway/pkg/depot"
	"github.com/aretw0/tramway/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fleet HTTP server",
	Long:  `Starts the tram fleet server, exposing the depot as a JSON API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		var journal ports.TransitionJournal
		if cfg.Redis.Addr != "" {
			redisJournal := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				journalCap(cfg, redisAdapter.WithCap)...)
			defer redisJournal.Close()
			journal = redisJournal
			logger.Info("journal backed by redis", "addr", cfg.Redis.Addr)
		} else {
			journal = memory.NewJournal(journalCap(cfg, memory.WithCap)...)
		}

		m := metrics.New()
		fleet := depot.New(
			depot.WithLogger(logger),
			depot.WithJournal(journal),
			depot.WithMetrics(m),
		)
		defer fleet.Close(context.Background())

		for _, id := range cfg.Fleet {
			if _, err := fleet.Create(id); err != nil {
				return err
			}
		}

		handler := httpAdapter.NewHandler(fleet,
			httpAdapter.WithJournal(journal),
			httpAdapter.WithMetrics(m),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting tramway server", "addr", srv.Addr, "fleet", len(cfg.Fleet))
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return err

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return err
				}
			}
			logger.Info("tramway server stopped")
			return nil
		}
	},
}

// journalCap builds the cap option for either journal flavor.
func journalCap[T any](cfg *config.Config, with func(int) T) []T {
	if cfg.Journal.Cap <= 0 {
		return nil
	}
	return []T{with(cfg.Journal.Cap)}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

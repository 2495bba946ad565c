// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nmoreno/steamvault/internal/cache"
	"github.com/nmoreno/steamvault/internal/config"
	"github.com/nmoreno/steamvault/internal/http/routes"
	"github.com/nmoreno/steamvault/internal/inventory"
	"github.com/nmoreno/steamvault/internal/steam"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load configuration")
	}

	store := cache.NewMemory()
	client := steam.New(
		steam.WithCurrency(cfg.Currency),
		steam.WithPriceTimeout(cfg.PriceTimeout),
	)
	inv := inventory.New(cfg, store, client, logger)

	s := routes.New(routes.ServerOptions{
		Inv:            inv,
		Log:            logger,
		PriceRateLimit: cfg.PriceRateLimit,
	})
	h := hlog.NewHandler(logger)(s.Router)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: h}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting app")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
}

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/tui"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the user leaves the UI or the process receives SIGINT or
// SIGTERM. Leaving the UI on purpose is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	a.logger.Info().Msg("client session started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Dur("duration", time.Since(started)).Msg("client session finished")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	}

	a.logger.Err(err).Msg("client session failed")
	return fmt.Errorf("run ui: %w", err)
}

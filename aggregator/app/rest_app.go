package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/rest"
	"github.com/Gthulhu/topology/config"
	"github.com/Gthulhu/topology/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func NewRestApp(cfg config.TopologyConfig) (*fx.App, error) {
	handlerModule, err := HandlerModule(cfg)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.Invoke(StartRestApp),
	)
	return app, nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := echo.New()
	engine.HideBanner = true
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":3001"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on port %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on port %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}

// RunOnce starts the service graph without the HTTP server, hands the service
// to fn and stops the graph again. It backs the one-shot CLI commands.
func RunOnce(ctx context.Context, cfg config.TopologyConfig, fn func(ctx context.Context, svc domain.Service) error, opts ...fx.Option) error {
	serviceModule, err := ServiceModule(cfg)
	if err != nil {
		return err
	}

	var svc domain.Service
	app := fx.New(
		serviceModule,
		fx.NopLogger,
		fx.Options(opts...),
		fx.Populate(&svc),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Logger(ctx).Warn().Err(err).Msg("failed to stop application")
		}
	}()
	return fn(ctx, svc)
}

package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-cleanarch/framework/config"
	"github.com/km-arc/go-cleanarch/framework/di"
	"github.com/km-arc/go-cleanarch/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container.
//
// Bound services:
//   - *config.Config (singleton)
type ConfigServiceProvider struct {
	di.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *di.Container) {
	envFiles := p.EnvFiles
	di.RegisterFactory(c, func(*di.Resolver) (*config.Config, error) {
		return config.Load(envFiles...), nil
	}, di.Singleton)
}

// ── LoggerServiceProvider ─────────────────────────────────────────────────────

// LoggerServiceProvider registers the structured logger. A development
// logger (human-readable, debug level) is used when app debug mode is on,
// a production logger (JSON, info level) otherwise.
//
// Bound services:
//   - *zap.Logger (singleton)
type LoggerServiceProvider struct {
	di.BaseProvider
}

func (p *LoggerServiceProvider) Register(c *di.Container) {
	di.RegisterFactory(c, func(r *di.Resolver) (*zap.Logger, error) {
		cfg, err := di.ResolveFrom[*config.Config](r)
		if err != nil {
			return nil, err
		}
		if cfg.App.Debug {
			return zap.NewDevelopment()
		}
		return zap.NewProduction()
	}, di.Singleton)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound services:
//   - *routing.Router (singleton)
type RoutingServiceProvider struct {
	di.BaseProvider
}

func (p *RoutingServiceProvider) Register(c *di.Container) {
	di.RegisterFactory(c, func(*di.Resolver) (*routing.Router, error) {
		return routing.New(), nil
	}, di.Singleton)
}

package app

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-cleanarch/framework/config"
	"github.com/km-arc/go-cleanarch/framework/di"
	"github.com/km-arc/go-cleanarch/framework/providers"
	"github.com/km-arc/go-cleanarch/framework/routing"
)

// Application is the top-level application container. It embeds the DI
// Container and a ProviderRegistry so user code can register services
// and providers directly on the app object.
type Application struct {
	*di.Container
	Providers *di.ProviderRegistry
}

// New creates and bootstraps the application. Framework core providers
// (config, logger, router) are registered in order; user providers are
// added with Register before Boot.
func New(envFiles ...string) *Application {
	c := di.New()
	registry := di.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggerServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider di.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all registered providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return di.MustResolve[*config.Config](a.Container)
}

// Logger resolves *zap.Logger from the container.
func (a *Application) Logger() *zap.Logger {
	return di.MustResolve[*zap.Logger](a.Container)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return di.MustResolve[*routing.Router](a.Container)
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	logger := a.Logger()
	router := a.Router()

	addr := ":" + cfg.App.Port
	logger.Info("server starting",
		zap.String("app", cfg.App.Name),
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

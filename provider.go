package main

import (
	"fmt"

	"github.com/km-arc/go-cleanarch/domain"
	"github.com/km-arc/go-cleanarch/framework/config"
	"github.com/km-arc/go-cleanarch/framework/di"
	"github.com/km-arc/go-cleanarch/storage"
	"github.com/km-arc/go-cleanarch/usecase"
)

// AppServiceProvider wires the user domain: the repository adapter
// chosen from configuration, the use cases, and the HTTP controller.
type AppServiceProvider struct {
	di.BaseProvider
}

func (p *AppServiceProvider) Register(c *di.Container) {
	// Repository adapter depends on runtime config, so it is bound
	// through a factory rather than a type registration.
	di.RegisterFactory(c, func(r *di.Resolver) (domain.UserRepository, error) {
		cfg, err := di.ResolveFrom[*config.Config](r)
		if err != nil {
			return nil, err
		}
		switch cfg.Storage.Driver {
		case "memory":
			return storage.NewMemoryUserRepository(), nil
		case "file":
			return storage.NewFileUserRepository(cfg.Storage.Path)
		default:
			return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
		}
	}, di.Singleton)

	// Use cases are stateless orchestrators; transient keeps them cheap
	// to construct and free of shared state.
	di.RegisterSelf[*usecase.CreateUser](c, di.Transient)
	di.RegisterSelf[*usecase.GetUser](c, di.Transient)
	di.RegisterSelf[*usecase.UpdateUser](c, di.Transient)
	di.RegisterSelf[*usecase.DeleteUser](c, di.Transient)

	di.RegisterSelf[*UserController](c, di.Singleton)
}

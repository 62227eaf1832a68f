// Package di provides a service-resolution container in the style of
// .NET's Microsoft.Extensions.DependencyInjection.
//
// # Overview
//
// The container maps abstract service types to registration records
// describing how to build them (a concrete implementation type whose
// dependencies are auto-resolved, or a factory function) and under what
// lifetime (Singleton, Transient). Resolution walks the dependency graph
// depth-first, re-entering itself for every dependency, caching singleton
// instances and failing fast on cycles.
//
// # Container Lifecycle
//
//  1. Create: c := di.New()
//  2. Register services (directly or through providers)
//  3. Resolve the root object(s) and run the application
//
// # Registration
//
//	// Interface → implementation, auto-wired via exported struct fields
//	// .NET: services.AddSingleton<IUserRepository, MemoryRepository>()
//	di.RegisterSingleton[domain.UserRepository, *storage.MemoryRepository](c)
//
//	// Concrete type registered as itself
//	// .NET: services.AddTransient<CreateUserUseCase>()
//	di.RegisterSelf[*usecase.CreateUser](c, di.Transient)
//
//	// Factory — for services whose construction needs non-service inputs
//	// .NET: services.AddSingleton<IUserRepository>(sp => new FileRepository(path))
//	di.RegisterFactory[domain.UserRepository](c, func(r *di.Resolver) (domain.UserRepository, error) {
//	    return storage.NewFileRepository("data/users")
//	}, di.Singleton)
//
// Registration never fails. Registering the same service type twice
// replaces the previous record wholesale, discarding any cached singleton.
//
// # Resolving
//
//	// Untyped
//	raw, err := c.Resolve(di.TypeOf[domain.UserRepository]())
//
//	// Generic (preferred — no type assertion required)
//	repo, err := di.Resolve[domain.UserRepository](c)
//
// Resolve reports three failures, all fatal misconfiguration:
//
//   - NotRegisteredError — the service type has no registration.
//   - CircularDependencyError — the type transitively depends on itself;
//     the error carries the resolution chain that closed the cycle.
//   - NotInjectableError — an implementation type cannot be introspected
//     or one of its dependency fields cannot be set.
//
// # Auto-wiring
//
// The implementation-type strategy discovers dependencies through an
// Inspector. The default inspector treats every exported field of the
// implementation struct as a dependency to resolve; tag a field with
// `inject:"-"` to opt it out. Fields that cannot be injected that way
// (for example, a string path) are the factory strategy's job — exactly
// as a constructor parameter that is not a service would be.
//
//	type CreateUser struct {
//	    Repo   domain.UserRepository // resolved from the container
//	    Logger *zap.Logger           // resolved from the container
//	    cache  map[string]bool       // unexported: ignored
//	}
//
// Alternate strategies (codegen, explicit builders) plug in via
// WithInspector without touching the resolution algorithm.
//
// # Service Providers
//
//	type AppServiceProvider struct{ di.BaseProvider }
//
//	func (p *AppServiceProvider) Register(c *di.Container) {
//	    di.RegisterSelf[*usecase.CreateUser](c, di.Transient)
//	}
//
//	registry := di.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
package di

package di

import (
	"fmt"
	"reflect"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations so an application can be
// assembled from composable units.
//
// Every provider must implement at minimum Register(). Boot() is called
// after ALL providers have been registered, making it safe to resolve
// other services inside Boot().
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other services here — use Boot() for that.
	Register(c *Container)

	// Boot is called after all providers are registered.
	// Safe to resolve and use any service here.
	Boot(c *Container)

	// Provides returns the service types this provider registers.
	// Used for deferred (lazy) provider loading.
	// Return nil if the provider is always eager.
	Provides() []reflect.Type

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() types is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct providing no-op implementations of
// Boot(), Provides(), and IsDeferred(). Embed it and override only what
// you need.
//
//	type AppServiceProvider struct{ di.BaseProvider }
//	func (p *AppServiceProvider) Register(c *di.Container) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container)        {}
func (p *BaseProvider) Provides() []reflect.Type { return nil }
func (p *BaseProvider) IsDeferred() bool         { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred (lazy) ones.
type ProviderRegistry struct {
	app        *Container
	eager      []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
	loaded     map[ServiceProvider]bool // deferred providers already loaded
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
		loaded:     make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method (unless the
// provider is deferred, in which case a lazy factory is installed for each
// type it provides).
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		r.interceptDeferred(provider)
		return
	}

	provider.Register(r.app)
	r.eager = append(r.eager, provider)

	// If already booted, boot this provider immediately
	if r.booted {
		provider.Boot(r.app)
	}
}

// interceptDeferred installs a lazy factory for each provided type. The
// first resolution loads the provider for real, which overwrites the lazy
// records with the provider's own registrations.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	for _, service := range provider.Provides() {
		svc := service
		r.app.RegisterFactory(svc, func(*Resolver) (any, error) {
			if r.loaded[provider] {
				// Loading did not replace this record: the provider
				// never registered what it claimed to provide.
				return nil, fmt.Errorf("di: deferred provider registered nothing for %s", typeName(svc))
			}
			r.loaded[provider] = true
			provider.Register(r.app)
			if r.booted {
				provider.Boot(r.app)
			}
			// Re-resolve against the provider's real registration.
			return r.app.Resolve(svc)
		}, Transient)
	}
}

// Boot calls Boot() on all eager providers. Must be called after ALL
// providers have been registered; second and later calls are no-ops.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.app)
	}
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }

package di

import (
	"reflect"
	"sync"
)

// ── Registration records ──────────────────────────────────────────────────────

// Factory builds a service instance by hand, receiving a Resolver for its
// own nested resolutions.
type Factory func(r *Resolver) (any, error)

// record describes how one service type is built. The strategy (impl vs
// factory) is fixed at registration; re-registering a service type replaces
// the record wholesale, which also discards any cached singleton.
type record struct {
	service  reflect.Type
	impl     reflect.Type // implementation-type strategy
	factory  Factory      // factory strategy; checked before impl
	lifetime Lifetime

	// instance is the cached singleton, set at most once.
	// Guarded by Container.mu.
	instance any
	resolved bool
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container owns the mapping from service type to registration record and
// resolves fully-wired object graphs from it. Create one per process at
// startup and pass it explicitly; there is no package-level default.
type Container struct {
	mu        sync.RWMutex
	records   map[reflect.Type]*record
	inspector Inspector
}

// Option configures a Container at construction time.
type Option func(*Container)

// WithInspector replaces the default struct-field inspector.
func WithInspector(i Inspector) Option {
	return func(c *Container) { c.inspector = i }
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		records:   make(map[reflect.Type]*record),
		inspector: fieldInspector{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register stores an implementation-type registration: resolving service
// constructs impl, auto-wiring its dependencies. A nil impl registers the
// service type as its own implementation (for concrete types).
//
//	// .NET: services.AddSingleton<IClock, SystemClock>()
//	c.Register(di.TypeOf[IClock](), di.TypeOf[*SystemClock](), di.Singleton)
func (c *Container) Register(service, impl reflect.Type, lifetime Lifetime) *Container {
	if impl == nil {
		impl = service
	}
	c.put(&record{service: service, impl: impl, lifetime: lifetime})
	return c
}

// RegisterSingleton is Register with a Singleton lifetime.
func (c *Container) RegisterSingleton(service, impl reflect.Type) *Container {
	return c.Register(service, impl, Singleton)
}

// RegisterTransient is Register with a Transient lifetime.
func (c *Container) RegisterTransient(service, impl reflect.Type) *Container {
	return c.Register(service, impl, Transient)
}

// RegisterFactory stores a factory registration: resolving service invokes
// factory instead of auto-wiring an implementation type.
func (c *Container) RegisterFactory(service reflect.Type, factory Factory, lifetime Lifetime) *Container {
	c.put(&record{service: service, factory: factory, lifetime: lifetime})
	return c
}

// RegisterValue stores a pre-built value as a singleton for service.
func (c *Container) RegisterValue(service reflect.Type, value any) *Container {
	return c.RegisterFactory(service, func(*Resolver) (any, error) {
		return value, nil
	}, Singleton)
}

func (c *Container) put(r *record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// The prior record — cached singleton included — is discarded wholesale.
	c.records[r.service] = r
}

// ── Introspection ─────────────────────────────────────────────────────────────

// IsRegistered reports whether service has a registration record.
func (c *Container) IsRegistered(service reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.records[service]
	return ok
}

// ServiceInfo is the diagnostic view of one registration.
type ServiceInfo struct {
	Service  reflect.Type
	Impl     reflect.Type // nil for factory registrations
	Lifetime Lifetime
	Factory  bool
	Resolved bool // a singleton instance is cached
}

// Services returns a snapshot of every registration. Mutating the returned
// map does not affect the container.
func (c *Container) Services() map[reflect.Type]ServiceInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[reflect.Type]ServiceInfo, len(c.records))
	for t, r := range c.records {
		info := ServiceInfo{
			Service:  r.service,
			Lifetime: r.lifetime,
			Factory:  r.factory != nil,
			Resolved: r.resolved,
		}
		if r.factory == nil {
			info.Impl = r.impl
		}
		out[t] = info
	}
	return out
}

// Reset removes every registration unconditionally, cached singleton
// instances included.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make(map[reflect.Type]*record)
}

package di

import (
	"fmt"
	"reflect"
)

// ── Resolution state ──────────────────────────────────────────────────────────

// resolution is the set of service types mid-construction on one call
// chain, kept as an ordered stack so cycle errors can report the path.
// Every top-level Resolve gets a fresh one; it is threaded through the
// recursion rather than stored on the container, so concurrent resolutions
// of the same type never see each other as a cycle.
type resolution struct {
	stack []reflect.Type
}

func (st *resolution) contains(t reflect.Type) bool {
	for _, s := range st.stack {
		if s == t {
			return true
		}
	}
	return false
}

// Resolver is the view of an in-progress resolution handed to factories.
// Resolving through it keeps the caller's cycle detection intact; a factory
// that resolved through the bare container instead would restart the
// in-progress set and miss cycles running through itself.
type Resolver struct {
	c  *Container
	st *resolution
}

// Resolve resolves service within the current resolution chain.
func (r *Resolver) Resolve(service reflect.Type) (any, error) {
	return r.c.resolve(service, r.st)
}

// Container returns the underlying container, for registration lookups.
func (r *Resolver) Container() *Container { return r.c }

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve returns a fully constructed instance of service, honoring the
// registration's lifetime. Failures are *NotRegisteredError,
// *CircularDependencyError or *NotInjectableError; all indicate
// misconfiguration and leave the container usable for unrelated services.
func (c *Container) Resolve(service reflect.Type) (any, error) {
	return c.resolve(service, &resolution{})
}

// MustResolve is Resolve, panicking on failure. Intended for wiring code
// that treats a resolution failure as fatal at startup.
func (c *Container) MustResolve(service reflect.Type) any {
	v, err := c.Resolve(service)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Container) resolve(service reflect.Type, st *resolution) (any, error) {
	if st.contains(service) {
		return nil, &CircularDependencyError{
			Service: service,
			Chain:   append([]reflect.Type(nil), st.stack...),
		}
	}

	c.mu.RLock()
	rec, ok := c.records[service]
	if !ok {
		c.mu.RUnlock()
		return nil, &NotRegisteredError{Service: service}
	}
	if rec.lifetime == Singleton && rec.resolved {
		v := rec.instance
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	st.stack = append(st.stack, service)
	v, err := c.build(rec, st)
	st.stack = st.stack[:len(st.stack)-1]
	if err != nil {
		return nil, err
	}

	if rec.lifetime == Singleton {
		c.mu.Lock()
		if rec.resolved {
			// Another resolution built it first; its instance wins.
			v = rec.instance
		} else {
			rec.instance = v
			rec.resolved = true
		}
		c.mu.Unlock()
	}
	return v, nil
}

// build constructs one instance for rec. The factory strategy is checked
// first, so it wins if a record somehow carries both.
func (c *Container) build(rec *record, st *resolution) (any, error) {
	if rec.factory != nil {
		return rec.factory(&Resolver{c: c, st: st})
	}
	return c.construct(rec.impl, st)
}

// construct auto-wires impl: the inspector lists its dependencies, each is
// resolved recursively, and the results are assigned to the matching
// fields. A struct with no injectable fields constructs trivially.
func (c *Container) construct(impl reflect.Type, st *resolution) (any, error) {
	deps, err := c.inspector.Dependencies(impl)
	if err != nil {
		return nil, err
	}

	structType := impl
	ptr := impl.Kind() == reflect.Pointer
	if ptr {
		structType = impl.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, &NotInjectableError{
			Impl:   impl,
			Reason: "implementation must be a struct or pointer to struct",
		}
	}

	v := reflect.New(structType).Elem()
	for _, dep := range deps {
		resolved, err := c.resolve(dep.Service, st)
		if err != nil {
			return nil, err
		}
		field := v.FieldByName(dep.Name)
		if !field.IsValid() || !field.CanSet() {
			return nil, &NotInjectableError{
				Impl:   impl,
				Field:  dep.Name,
				Reason: "no settable field with this name",
			}
		}
		if resolved == nil {
			continue
		}
		rv := reflect.ValueOf(resolved)
		if !rv.Type().AssignableTo(field.Type()) {
			return nil, &NotInjectableError{
				Impl:   impl,
				Field:  dep.Name,
				Reason: fmt.Sprintf("resolved %s is not assignable to %s", rv.Type(), field.Type()),
			}
		}
		field.Set(rv)
	}

	if ptr {
		return v.Addr().Interface(), nil
	}
	return v.Interface(), nil
}

package di

import (
	"fmt"
	"reflect"
)

// Go does not allow methods to introduce their own type parameters, so the
// generic surface lives in package-level functions taking the container.

// TypeOf returns the type token for T. Unlike reflect.TypeOf on a value, it
// works for interface types:
//
//	di.TypeOf[domain.UserRepository]()  // the interface itself
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register registers implementation I for service S.
func Register[S, I any](c *Container, lifetime Lifetime) *Container {
	return c.Register(TypeOf[S](), TypeOf[I](), lifetime)
}

// RegisterSingleton registers implementation I for service S as a singleton.
func RegisterSingleton[S, I any](c *Container) *Container {
	return Register[S, I](c, Singleton)
}

// RegisterTransient registers implementation I for service S as transient.
func RegisterTransient[S, I any](c *Container) *Container {
	return Register[S, I](c, Transient)
}

// RegisterSelf registers concrete type T as its own implementation.
func RegisterSelf[T any](c *Container, lifetime Lifetime) *Container {
	return c.Register(TypeOf[T](), nil, lifetime)
}

// RegisterFactory registers a typed factory for service S.
func RegisterFactory[S any](c *Container, factory func(r *Resolver) (S, error), lifetime Lifetime) *Container {
	return c.RegisterFactory(TypeOf[S](), func(r *Resolver) (any, error) {
		return factory(r)
	}, lifetime)
}

// RegisterValue registers a pre-built value as a singleton for service S.
func RegisterValue[S any](c *Container, value S) *Container {
	return c.RegisterValue(TypeOf[S](), value)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve resolves service T and type-asserts the result.
func Resolve[T any](c *Container) (T, error) {
	v, err := c.Resolve(TypeOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return assert[T](v)
}

// MustResolve is Resolve, panicking on failure.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// ResolveFrom resolves service T inside a factory, preserving the caller's
// cycle detection.
func ResolveFrom[T any](r *Resolver) (T, error) {
	v, err := r.Resolve(TypeOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return assert[T](v)
}

func assert[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("di: service %s resolved to incompatible %T", TypeOf[T](), v)
	}
	return t, nil
}

package di_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/km-arc/go-cleanarch/framework/di"
)

// withPlainField carries a non-service field opted out of injection.
type withPlainField struct {
	Logger Logger
	Name   string `inject:"-"`
}

// withHiddenDep asks for an injection into a field the resolver cannot set.
type withHiddenDep struct {
	logger Logger `inject:""`
}

type funcService func() string

func TestFieldInspector_OptOutTagSkipsField(t *testing.T) {
	c := di.New()
	di.RegisterSingleton[Logger, *memoryLogger](c)
	di.RegisterSelf[*withPlainField](c, di.Transient)

	got := di.MustResolve[*withPlainField](c)

	if got.Logger == nil {
		t.Error("untagged service field should be injected")
	}
	if got.Name != "" {
		t.Errorf("opted-out field should stay zero, got %q", got.Name)
	}
}

func TestFieldInspector_UnexportedTaggedField(t *testing.T) {
	c := di.New()
	di.RegisterSingleton[Logger, *memoryLogger](c)
	di.RegisterSelf[*withHiddenDep](c, di.Transient)

	_, err := di.Resolve[*withHiddenDep](c)

	var notInjectable *di.NotInjectableError
	if !errors.As(err, &notInjectable) {
		t.Fatalf("got %v, want *di.NotInjectableError", err)
	}
	if notInjectable.Impl != di.TypeOf[*withHiddenDep]() {
		t.Errorf("error should name the implementation type, got %v", notInjectable.Impl)
	}
	if notInjectable.Field != "logger" {
		t.Errorf("error should name the offending field, got %q", notInjectable.Field)
	}
}

func TestFieldInspector_NonStructImplementation(t *testing.T) {
	c := di.New()
	di.RegisterSelf[funcService](c, di.Transient)

	_, err := di.Resolve[funcService](c)

	var notInjectable *di.NotInjectableError
	if !errors.As(err, &notInjectable) {
		t.Fatalf("got %v, want *di.NotInjectableError", err)
	}
}

func TestFieldInspector_Error_ContainerStaysUsable(t *testing.T) {
	c := di.New()
	di.RegisterSingleton[Logger, *memoryLogger](c)
	di.RegisterSelf[*withHiddenDep](c, di.Transient)

	if _, err := di.Resolve[*withHiddenDep](c); err == nil {
		t.Fatal("uninjectable implementation should fail")
	}
	if _, err := di.Resolve[Logger](c); err != nil {
		t.Errorf("unrelated service should still resolve, got %v", err)
	}
}

func TestResolve_MismatchedDependencyType(t *testing.T) {
	c := di.New()
	// Untyped registration lets the factory return something that does not
	// satisfy the Notifier's Logger field.
	c.RegisterFactory(di.TypeOf[Logger](), func(*di.Resolver) (any, error) {
		return 42, nil
	}, di.Transient)
	di.RegisterSelf[*Notifier](c, di.Transient)

	_, err := di.Resolve[*Notifier](c)

	var notInjectable *di.NotInjectableError
	if !errors.As(err, &notInjectable) {
		t.Fatalf("got %v, want *di.NotInjectableError", err)
	}
	if notInjectable.Field != "Logger" {
		t.Errorf("error should name the mismatched field, got %q", notInjectable.Field)
	}
}

// ── Inspector substitution ────────────────────────────────────────────────────

// explicitInspector is a reflection-free strategy: dependencies are declared
// up front per implementation type.
type explicitInspector struct {
	deps map[reflect.Type][]di.Dependency
}

func (i *explicitInspector) Dependencies(impl reflect.Type) ([]di.Dependency, error) {
	return i.deps[impl], nil
}

func TestWithInspector_ReplacesStrategy(t *testing.T) {
	inspector := &explicitInspector{deps: map[reflect.Type][]di.Dependency{
		di.TypeOf[*Notifier](): {{Name: "Logger", Service: di.TypeOf[Logger]()}},
	}}

	c := di.New(di.WithInspector(inspector))
	di.RegisterSingleton[Logger, *memoryLogger](c)
	di.RegisterSelf[*Notifier](c, di.Transient)
	// Under the explicit strategy this would fail with the default
	// inspector: its unexported tagged field is never consulted.
	di.RegisterSelf[*withHiddenDep](c, di.Transient)

	n := di.MustResolve[*Notifier](c)
	if n.Logger == nil {
		t.Error("declared dependency should be injected")
	}

	if _, err := di.Resolve[*withHiddenDep](c); err != nil {
		t.Errorf("explicit strategy declares no deps for this type, got %v", err)
	}
}

package di

import (
	"fmt"
	"reflect"
	"strings"
)

// NotRegisteredError is returned by Resolve when the requested service type
// has no registration record.
type NotRegisteredError struct {
	Service reflect.Type
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("di: service %s not registered", typeName(e.Service))
}

// CircularDependencyError is returned by Resolve when constructing a service
// would require constructing itself, directly or transitively. Chain is the
// resolution path that led back to Service.
type CircularDependencyError struct {
	Service reflect.Type
	Chain   []reflect.Type
}

func (e *CircularDependencyError) Error() string {
	names := make([]string, 0, len(e.Chain)+1)
	for _, t := range e.Chain {
		names = append(names, typeName(t))
	}
	names = append(names, typeName(e.Service))
	return fmt.Sprintf("di: circular dependency detected for %s (%s)",
		typeName(e.Service), strings.Join(names, " -> "))
}

// NotInjectableError is returned by Resolve when an implementation type
// cannot be auto-wired: the type is not introspectable, or the named
// dependency field cannot receive an injected value.
type NotInjectableError struct {
	Impl   reflect.Type
	Field  string // empty when the whole type is at fault
	Reason string
}

func (e *NotInjectableError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("di: cannot inject %s: %s", typeName(e.Impl), e.Reason)
	}
	return fmt.Sprintf("di: cannot inject field %s of %s: %s",
		e.Field, typeName(e.Impl), e.Reason)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

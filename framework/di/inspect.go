package di

import "reflect"

// Dependency is one requirement an implementation type needs resolved
// before it can be constructed.
type Dependency struct {
	// Name is the struct field the dependency is delivered through.
	Name string
	// Service is the service type to resolve for it.
	Service reflect.Type
}

// Inspector reports the ordered dependencies of an implementation type.
// It is the only reflective capability the resolver consumes; alternate
// construction strategies (codegen, explicit builder registration) can be
// substituted via WithInspector without changing the resolution algorithm.
type Inspector interface {
	Dependencies(impl reflect.Type) ([]Dependency, error)
}

// fieldInspector is the default Inspector. Every exported field of the
// implementation struct is a dependency; `inject:"-"` opts a field out.
// An unexported field carrying an inject tag asks for an injection the
// resolver cannot perform, so it is reported as an error rather than
// silently skipped.
type fieldInspector struct{}

func (fieldInspector) Dependencies(impl reflect.Type) ([]Dependency, error) {
	st := impl
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, &NotInjectableError{
			Impl:   impl,
			Reason: "implementation must be a struct or pointer to struct",
		}
	}

	var deps []Dependency
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		tag, tagged := f.Tag.Lookup("inject")
		if tag == "-" {
			continue
		}
		if !f.IsExported() {
			if tagged {
				return nil, &NotInjectableError{
					Impl:   impl,
					Field:  f.Name,
					Reason: "field is unexported",
				}
			}
			continue
		}
		deps = append(deps, Dependency{Name: f.Name, Service: f.Type})
	}
	return deps, nil
}

package di

// Lifetime is the caching policy of a registration.
type Lifetime int

const (
	// Transient constructs a fresh instance on every resolution.
	Transient Lifetime = iota

	// Singleton constructs once on first resolution and reuses that
	// instance for the container's entire life.
	Singleton

	// Scoped is reserved for per-scope caching. No scope boundary is
	// defined yet, so a Scoped registration constructs a fresh instance
	// per resolution, like Transient.
	Scoped
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	default:
		return "unknown"
	}
}

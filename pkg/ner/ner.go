// Package ner defines the optional named-entity capability consumed by
// hybrid detection. The core never requires a provider: when none of the
// preferred backends can be loaded, hybrid mode silently degrades to
// regex-only detection.
package ner

// EntityType is the coarse classification a provider assigns to a span.
// The detection core maps these onto its own label set and discards
// anything else.
type EntityType string

const (
	EntityPerson   EntityType = "person"
	EntityLocation EntityType = "location"
	EntityDate     EntityType = "date"
)

// Entity is one span reported by a provider. Confidence may be zero when
// the underlying model exposes none; the consumer substitutes a default.
type Entity struct {
	Start      int
	End        int
	Type       EntityType
	Text       string
	Confidence float64
}

// Provider supplies named-entity spans for a text.
type Provider interface {
	Name() string
	Entities(text string) []Entity
}

// Factory constructs a provider, returning an error when the backing model
// cannot be loaded in this environment.
type Factory func() (Provider, error)

var factories = map[string]Factory{}

// Register makes a provider constructor available to Resolve under name.
// Registration happens at init time; later registrations replace earlier
// ones with the same name.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// Resolve walks the preference list and returns the first provider that
// loads. It returns nil when none is available; callers must treat a nil
// provider as "capability absent", not as an error.
func Resolve(preference []string) Provider {
	for _, name := range preference {
		factory, ok := factories[name]
		if !ok {
			continue
		}
		provider, err := factory()
		if err != nil {
			continue
		}
		return provider
	}
	return nil
}

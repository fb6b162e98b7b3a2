package omnisettings

import "sort"

// Loader is a pluggable settings source contributed by the host application.
//
// Loaders run in ascending Priority order with ties broken by registration
// order, so a later loader may overwrite any key written by an earlier one.
// That is the documented override semantics, not a conflict. A Loader is
// stateless from the resolver's point of view: it receives the working map
// and contributes to it.
type Loader interface {
	// Priority determines execution order; lower runs earlier.
	Priority() int

	// Load adds or overwrites entries in the working map. An error aborts
	// the whole resolution, since a partially loaded configuration is unsafe
	// to serve.
	Load(settings map[string]string) error
}

// LoaderFunc adapts a plain function into a Loader with a fixed priority.
type LoaderFunc struct {
	Order int
	Fn    func(settings map[string]string) error
}

func (l LoaderFunc) Priority() int {
	return l.Order
}

func (l LoaderFunc) Load(settings map[string]string) error {
	return l.Fn(settings)
}

// sortLoaders returns the loaders in execution order without mutating the
// registration slice. The sort is stable so equal priorities keep their
// registration order.
func sortLoaders(loaders []Loader) []Loader {
	sorted := make([]Loader, len(loaders))
	copy(sorted, loaders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})

	return sorted
}

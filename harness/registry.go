package harness

// Registry is the collection of registered tests. It is append-only: tests
// are registered during application startup and never removed. All
// registration must happen before the first run entry point is used; after
// that the engine reads the registry freely (the harness is
// single-threaded by design, so there is no locking).
type Registry struct {
	tests []Test
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a test. Registering a test with no name or no body is a
// programming error and panics. Duplicate names are allowed; lookups
// resolve to whichever test was registered first.
func (r *Registry) Register(t Test) {
	if t.Name == "" {
		panic("harness: Register called with an empty test name")
	}
	if t.Run == nil {
		panic("harness: Register called with no body for test " + t.Name)
	}
	r.tests = append(r.tests, t)
}

// Lookup finds the first registered test with the given name.
func (r *Registry) Lookup(name string) (Test, bool) {
	return lookup(r.tests, name)
}

// Resolve looks up each requested name, partitioning the request into the
// tests that matched and the names that did not. Duplicate requested names
// resolve independently. The order of the matched list does not affect
// execution order, which always follows the data stream.
func (r *Registry) Resolve(names []string) (matched []Test, unknown []string) {
	for _, name := range names {
		if t, ok := lookup(r.tests, name); ok {
			matched = append(matched, t)
		} else {
			unknown = append(unknown, name)
		}
	}
	return
}

// All returns the registered tests in registration order.
func (r *Registry) All() []Test {
	return append([]Test(nil), r.tests...)
}

// Names returns the registered names in registration order, including any
// duplicates.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tests))
	for _, t := range r.tests {
		names = append(names, t.Name)
	}
	return names
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	return len(r.tests)
}

func lookup(tests []Test, name string) (Test, bool) {
	for _, t := range tests {
		if t.Name == name {
			return t, true
		}
	}
	return Test{}, false
}

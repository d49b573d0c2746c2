package schema

// Registry is the append-only store of declared types for one build
// session. Re-registering an id overwrites the prior definition: last write
// wins, by policy, with the id keeping its original position in List().
// Not synchronized; callers needing concurrency run one registry per
// session.
type Registry struct {
	order []string
	types map[string]*Type
}

// NewRegistry creates an empty type registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Type),
	}
}

// Register stores the type, overwriting any prior definition with the same
// id. Duplicate registration is not an error.
func (r *Registry) Register(t *Type) {
	if _, ok := r.types[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.types[t.ID] = t
}

// Get returns the registered type or a NotFoundError.
func (r *Registry) Get(id string) (*Type, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, NewNotFoundError("type", id)
	}
	return t, nil
}

// Has reports whether a type with the given id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.types[id]
	return ok
}

// List returns all registered types in registration order.
func (r *Registry) List() []*Type {
	out := make([]*Type, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.types[id])
	}
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

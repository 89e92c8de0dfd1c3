package command

// Registry maps command names to descriptors. It is owned by a single
// application instance, fully populated before dispatch, and treated as
// read-only afterwards.
type Registry struct {
	order  []string
	byName map[string]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Descriptor),
	}
}

// Register inserts a descriptor keyed by its name. Re-registering an
// existing name silently overwrites the prior descriptor (last write wins);
// the name keeps its original position in the materialization order.
func (r *Registry) Register(d *Descriptor) {
	if _, exists := r.byName[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.byName[d.Name] = d
}

// Lookup returns the descriptor registered under the given primary name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Resolve returns the descriptor for a primary name or an alias. Primary
// names shadow aliases; among aliases, registration order wins.
func (r *Registry) Resolve(name string) (*Descriptor, bool) {
	if d, ok := r.byName[name]; ok {
		return d, true
	}
	for _, n := range r.order {
		for _, alias := range r.byName[n].Aliases {
			if alias == name {
				return r.byName[n], true
			}
		}
	}
	return nil, false
}

// All returns every descriptor in registration order.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byName[n])
	}
	return out
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

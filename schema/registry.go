package schema

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/internal/stringutil"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry indexes descriptors by name.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Descriptor),
	}
}

// Register adds a group of descriptors to the registry.
// Fields declared with EntityRef or ListRef are resolved against the group
// and the descriptors already registered, which allows types of the same group
// to reference each other regardless of their order.
// If any descriptor cannot be registered, the registry is left untouched.
func (r *Registry) Register(ds ...*Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[string]*Descriptor, len(ds))
	for _, d := range ds {
		if _, ok := r.types[d.name]; ok {
			return errors.Wrapf(ErrDuplicateType, "%s", d.typeName)
		}
		if _, ok := batch[d.name]; ok {
			return errors.Wrapf(ErrDuplicateType, "%s", d.typeName)
		}
		batch[d.name] = d
	}

	lookup := func(name string) *Descriptor {
		name = stringutil.LcFirst(name)
		if d, ok := batch[name]; ok {
			return d
		}
		return r.types[name]
	}

	type binding struct {
		d    *Descriptor
		i    int
		typ  *Descriptor
		alts []*Descriptor
	}
	var bindings []binding

	for _, d := range ds {
		for i, f := range d.fields {
			if f.ref == "" || f.Type != nil {
				continue
			}

			b := binding{d: d, i: i, typ: lookup(f.ref)}
			if b.typ == nil {
				return errors.Wrapf(ErrUnknownType, "%s.%s references %s", d.name, f.Name, f.ref)
			}
			for _, ref := range f.altRefs {
				alt := lookup(ref)
				if alt == nil {
					return errors.Wrapf(ErrUnknownType, "%s.%s references %s", d.name, f.Name, ref)
				}
				b.alts = append(b.alts, alt)
			}
			bindings = append(bindings, b)
		}
	}

	for _, b := range bindings {
		b.d.fields[b.i].Type = b.typ
		b.d.fields[b.i].Alternatives = b.alts
	}

	maps.Copy(r.types, batch)

	return nil
}

// MustRegister calls Register and panics on error.
func (r *Registry) MustRegister(ds ...*Descriptor) {
	if err := r.Register(ds...); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under name.
// The first letter of name is matched case-insensitively, so both
// the type name and the XML name of a type can be used.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.types[stringutil.LcFirst(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%s", name)
	}

	return d, nil
}

// Names returns the XML names of the registered types, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := maps.Keys(r.types)
	slices.Sort(names)
	return names
}

// Descriptors returns the registered descriptors, sorted by name.
func (r *Registry) Descriptors() []*Descriptor {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	ds := make([]*Descriptor, len(names))
	for i, n := range names {
		ds[i] = r.types[n]
	}
	return ds
}

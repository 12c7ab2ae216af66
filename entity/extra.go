package entity

// Extra is an ordered bag of name/value pairs.
type Extra struct {
	pairs []pair
}

type pair struct {
	Name  string
	Value string
}

// set replaces the value stored under name, or adds it at the end of the bag.
func (x *Extra) set(name, value string) {
	for i := range x.pairs {
		if x.pairs[i].Name == name {
			x.pairs[i].Value = value
			return
		}
	}

	x.pairs = append(x.pairs, pair{name, value})
}

// Get returns the value stored under name.
func (x *Extra) Get(name string) (string, bool) {
	for _, p := range x.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}

	return "", false
}

// Delete removes name from the bag.
func (x *Extra) Delete(name string) {
	for i := range x.pairs {
		if x.pairs[i].Name == name {
			x.pairs = append(x.pairs[:i], x.pairs[i+1:]...)
			return
		}
	}
}

// Iterate calls fn for each pair, in insertion order.
// If fn returns an error, the iteration stops.
func (x *Extra) Iterate(fn func(name, value string) error) error {
	for _, p := range x.pairs {
		if err := fn(p.Name, p.Value); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of pairs.
func (x *Extra) Len() int {
	return len(x.pairs)
}

// Names returns the names stored in the bag, in insertion order.
func (x *Extra) Names() []string {
	names := make([]string, len(x.pairs))
	for i, p := range x.pairs {
		names[i] = p.Name
	}
	return names
}

// Reset empties the bag.
func (x *Extra) Reset() {
	x.pairs = x.pairs[:0]
}

package types

import "strings"

var _ Value = NewListValue()

// ListValue is an ordered sequence of entities or raw fragments.
type ListValue struct {
	items []Value
}

// NewListValue returns a list holding the given items.
func NewListValue(items ...Value) *ListValue {
	return &ListValue{items: items}
}

func (v *ListValue) V() any {
	return v.items
}

func (v *ListValue) Type() Type {
	return TypeList
}

// Append adds items at the end of the list.
func (v *ListValue) Append(items ...Value) *ListValue {
	v.items = append(v.items, items...)
	return v
}

// Len returns the number of items.
func (v *ListValue) Len() int {
	return len(v.items)
}

// Index returns the i-th item.
func (v *ListValue) Index(i int) Value {
	return v.items[i]
}

// Iterate calls fn for each item, in order.
// If fn returns an error, the iteration stops.
func (v *ListValue) Iterate(fn func(i int, item Value) error) error {
	for i, it := range v.items {
		if err := fn(i, it); err != nil {
			return err
		}
	}

	return nil
}

func (v *ListValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, it := range v.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(it.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

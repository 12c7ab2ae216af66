package types

import "github.com/saasukit/saasu/xmltree"

var _ Value = NewRawValue(nil)

// RawValue is an XML fragment kept as is, used for list items
// whose element type is not declared.
type RawValue struct {
	n *xmltree.Node
}

func NewRawValue(n *xmltree.Node) *RawValue {
	return &RawValue{n: n}
}

func (v *RawValue) V() any {
	return v.n
}

func (v *RawValue) Type() Type {
	return TypeRaw
}

// Node returns the fragment.
func (v *RawValue) Node() *xmltree.Node {
	return v.n
}

// String returns the direct text of the fragment.
func (v *RawValue) String() string {
	if v.n == nil {
		return ""
	}
	return v.n.Text
}

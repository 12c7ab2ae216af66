package types

import "encoding/json"

var _ Value = NewTextValue("")

type TextValue string

// NewTextValue returns a scalar value.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

func (v TextValue) String() string {
	return string(v)
}

func (v TextValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

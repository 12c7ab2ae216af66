// Package types defines the values an entity field can hold.
package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrFieldNotFound must be returned by Object implementations when calling the Get method and
	// the field is not declared.
	ErrFieldNotFound = errors.New("field not found")
)

// Type represents the shape of a field value.
type Type uint8

// List of supported types.
const (
	TypeNull Type = iota + 1
	TypeText
	TypeEntity
	TypeList
	TypeRaw
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeText:
		return "text"
	case TypeEntity:
		return "entity"
	case TypeList:
		return "list"
	case TypeRaw:
		return "raw"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// A Value is the content of a field.
type Value interface {
	Type() Type
	V() any
	String() string
}

// An Object is a named node whose declared fields can be read by name.
// Entities implement it.
type Object interface {
	// Name returns the XML tag of the object.
	Name() string

	// Iterate goes through all the declared fields of the object, in declaration order.
	Iterate(fn func(field string, value Value) error) error

	// Get returns the value of the given field.
	// If the field is not declared, it returns ErrFieldNotFound.
	Get(field string) (Value, error)
}

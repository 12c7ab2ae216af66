// Package entity implements schema-typed data nodes.
//
// An Entity holds one value per field declared by its descriptor, in declaration
// order, plus an extra-data bag collecting data found in XML documents that
// the descriptor does not declare.
package entity

import (
	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/types"
)

var (
	// ErrFieldDeclared is returned when trying to store a declared field in the extra-data bag.
	ErrFieldDeclared = errors.New("field is declared")
	// ErrInvalidTimestamp is returned when the last modification date cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Save operations.
const (
	OperationInsert = "insert"
	OperationUpdate = "update"
)

var _ types.Object = (*Entity)(nil)

// Entity is an instance of an entity type.
// It is not safe for concurrent use.
type Entity struct {
	desc   *schema.Descriptor
	values []types.Value
	extra  Extra
}

// New creates an empty entity of type d: every field is NULL and the extra-data bag is empty.
func New(d *schema.Descriptor) *Entity {
	e := Entity{
		desc:   d,
		values: make([]types.Value, d.NumField()),
	}
	e.Reset()
	return &e
}

// Name returns the XML name of the entity type.
func (e *Entity) Name() string {
	return e.desc.Name()
}

// Descriptor returns the descriptor of the entity type.
func (e *Entity) Descriptor() *schema.Descriptor {
	return e.desc
}

// Iterate goes through all the declared fields, in declaration order.
// If the given function returns an error, the iteration stops.
func (e *Entity) Iterate(fn func(field string, value types.Value) error) error {
	for i, f := range e.desc.Fields() {
		if err := fn(f.Name, e.values[i]); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the value of a declared field.
func (e *Entity) Get(field string) (types.Value, error) {
	i := e.desc.Index(field)
	if i < 0 {
		return nil, errors.Wrapf(types.ErrFieldNotFound, "%s.%s", e.Name(), field)
	}

	return e.values[i], nil
}

// Text returns the string form of a field and reports whether the field is declared and not NULL.
func (e *Entity) Text(field string) (string, bool) {
	v, err := e.Get(field)
	if err != nil || types.IsNull(v) {
		return "", false
	}

	return types.AsString(v), true
}

// Entity returns the nested entity held by field, or nil.
func (e *Entity) Entity(field string) *Entity {
	v, err := e.Get(field)
	if err != nil {
		return nil
	}

	sub, _ := types.AsObject(v).(*Entity)
	return sub
}

// List returns the list held by field, or nil.
func (e *Entity) List(field string) *types.ListValue {
	v, err := e.Get(field)
	if err != nil {
		return nil
	}

	return types.AsList(v)
}

// Set replaces the value of a declared field. A nil value is stored as NULL.
func (e *Entity) Set(field string, v types.Value) error {
	i := e.desc.Index(field)
	if i < 0 {
		return errors.Wrapf(types.ErrFieldNotFound, "%s.%s", e.Name(), field)
	}

	if v == nil {
		v = types.NewNullValue()
	}
	e.values[i] = v
	return nil
}

// SetText sets a field to a text value.
func (e *Entity) SetText(field, value string) error {
	return e.Set(field, types.NewTextValue(value))
}

// SetNull sets a field to NULL.
func (e *Entity) SetNull(field string) error {
	return e.Set(field, types.NewNullValue())
}

// SetEntity sets a field to a nested entity.
func (e *Entity) SetEntity(field string, sub *Entity) error {
	if sub == nil {
		return e.SetNull(field)
	}

	return e.Set(field, types.NewEntityValue(sub))
}

// Append adds entities at the end of a list field, creating the list if the field is NULL.
func (e *Entity) Append(field string, items ...*Entity) error {
	v, err := e.Get(field)
	if err != nil {
		return err
	}

	l := types.AsList(v)
	if l == nil {
		if !types.IsNull(v) {
			return errors.Errorf("%s.%s is not a list", e.Name(), field)
		}
		l = types.NewListValue()
	}

	for _, it := range items {
		l.Append(types.NewEntityValue(it))
	}

	return e.Set(field, l)
}

// Reset sets every field to NULL and empties the extra-data bag.
func (e *Entity) Reset() {
	for i := range e.values {
		e.values[i] = types.NewNullValue()
	}
	e.extra.Reset()
}

// ID returns the identifier of the entity and reports whether it is set.
func (e *Entity) ID() (string, bool) {
	return e.Text(schema.FieldID)
}

// SaveOperation returns the operation a web service should perform to save the entity:
// insert when it has no identifier, update otherwise.
// Entity types may override it with schema.Descriptor.SetSaveOperation.
func (e *Entity) SaveOperation() string {
	if op := e.desc.SaveOperation(); op != "" {
		return op
	}

	if id, ok := e.ID(); ok && id != "" {
		return OperationUpdate
	}

	return OperationInsert
}

// SetExtra stores a value in the extra-data bag.
// Declared fields cannot be stored there.
func (e *Entity) SetExtra(name, value string) error {
	if e.desc.Has(name) {
		return errors.Wrapf(ErrFieldDeclared, "%s.%s", e.Name(), name)
	}

	e.extra.set(name, value)
	return nil
}

// GetExtra returns a value of the extra-data bag.
func (e *Entity) GetExtra(name string) (string, bool) {
	return e.extra.Get(name)
}

// Extra returns the extra-data bag.
func (e *Entity) Extra() *Extra {
	return &e.extra
}

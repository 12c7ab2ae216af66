// Package schema describes the shape of entity types: their ordered fields,
// where identifiers are placed in XML and the types of nested entities and list items.
//
// Descriptors are declared once, usually in package-level variables, and registered
// in a Registry. They must not be modified after registration.
package schema

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/internal/stringutil"
)

// Fields every entity type declares.
const (
	FieldID               = "id"
	FieldLastModifiedByID = "lastModifiedById"
	FieldUTCLastModified  = "utcLastModified"
)

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrDuplicateType  = errors.New("duplicate type")
	ErrUnknownType    = errors.New("unknown type")
)

// Placement decides whether the identifier fields of an entity
// are written as XML attributes or as child elements.
type Placement uint8

const (
	PlacementAttribute Placement = iota
	PlacementElement
)

func (p Placement) String() string {
	switch p {
	case PlacementAttribute:
		return "attribute"
	case PlacementElement:
		return "element"
	}

	panic(fmt.Sprintf("unsupported placement %#v", p))
}

// Kind of a declared field.
type Kind uint8

const (
	KindScalar Kind = iota
	KindEntity
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEntity:
		return "entity"
	case KindList:
		return "list"
	}

	panic(fmt.Sprintf("unsupported kind %#v", k))
}

// Field is a declared field of an entity type.
type Field struct {
	Name string
	Kind Kind
	// Type is the declared type of a nested entity or of list items.
	// A list field with a nil Type holds opaque XML fragments.
	Type *Descriptor
	// Alternatives are other types the items of a list may have.
	// Items are matched with them by XML name, Type being the fallback.
	Alternatives []*Descriptor
	// Internal fields are never written, read or reset by the XML codec.
	Internal bool

	ref     string
	altRefs []string
}

// Scalar declares a text field.
func Scalar(name string) Field {
	return Field{Name: name, Kind: KindScalar}
}

// Entity declares a nested entity of type d.
func Entity(name string, d *Descriptor) Field {
	return Field{Name: name, Kind: KindEntity, Type: d}
}

// EntityRef declares a nested entity whose type is resolved by name
// when the descriptor is registered.
func EntityRef(name, typeName string) Field {
	return Field{Name: name, Kind: KindEntity, ref: typeName}
}

// List declares a list of entities of type elem.
// Items may also be of one of the alternative types.
func List(name string, elem *Descriptor, alternatives ...*Descriptor) Field {
	return Field{Name: name, Kind: KindList, Type: elem, Alternatives: alternatives}
}

// ListRef declares a list whose element types are resolved by name
// when the descriptor is registered.
func ListRef(name, typeName string, alternatives ...string) Field {
	return Field{Name: name, Kind: KindList, ref: typeName, altRefs: alternatives}
}

// ItemTypes returns the types list items may have, Type first.
func (f Field) ItemTypes() []*Descriptor {
	if f.Type == nil {
		return nil
	}

	return append([]*Descriptor{f.Type}, f.Alternatives...)
}

// ItemType returns the type of a list item found under the given XML tag.
// It returns Type if no alternative is named after tag.
func (f Field) ItemType(tag string) *Descriptor {
	for _, d := range f.Alternatives {
		if d.name == tag {
			return d
		}
	}

	return f.Type
}

// OpaqueList declares a list whose items are kept as raw XML.
func OpaqueList(name string) Field {
	return Field{Name: name, Kind: KindList}
}

// Internal marks a field as internal.
func Internal(f Field) Field {
	f.Internal = true
	return f
}

// Descriptor describes an entity type.
type Descriptor struct {
	typeName  string
	name      string
	placement Placement
	fields    []Field
	index     map[string]int
	saveOp    string
}

// New creates a descriptor for the type typeName. The common fields id and lastModifiedById
// are declared first and utcLastModified last, unless fields already declares them.
func New(typeName string, placement Placement, fields ...Field) (*Descriptor, error) {
	if typeName == "" {
		return nil, errors.New("type name must not be empty")
	}

	d := Descriptor{
		typeName:  stringutil.UcFirst(typeName),
		name:      stringutil.LcFirst(typeName),
		placement: placement,
		index:     make(map[string]int, len(fields)+3),
	}

	var all []Field
	for _, name := range []string{FieldID, FieldLastModifiedByID} {
		if !containsField(fields, name) {
			all = append(all, Scalar(name))
		}
	}
	all = append(all, fields...)
	if !containsField(fields, FieldUTCLastModified) {
		all = append(all, Scalar(FieldUTCLastModified))
	}

	for _, f := range all {
		if f.Name == "" {
			return nil, errors.Errorf("%s: field name must not be empty", d.name)
		}

		if _, ok := d.index[f.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateField, "%s.%s", d.name, f.Name)
		}

		d.index[f.Name] = len(d.fields)
		d.fields = append(d.fields, f)
	}

	return &d, nil
}

// MustNew calls New and panics on error.
func MustNew(typeName string, placement Placement, fields ...Field) *Descriptor {
	d, err := New(typeName, placement, fields...)
	if err != nil {
		panic(err)
	}
	return d
}

func containsField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// SetSaveOperation overrides the operation used to save entities of this type.
// It must be called before the descriptor is registered.
func (d *Descriptor) SetSaveOperation(op string) *Descriptor {
	d.saveOp = op
	return d
}

// SaveOperation returns the operation set by SetSaveOperation, if any.
func (d *Descriptor) SaveOperation() string {
	return d.saveOp
}

// TypeName returns the name of the type, e.g. ServiceInvoiceItem.
func (d *Descriptor) TypeName() string {
	return d.typeName
}

// Name returns the XML name of the type, e.g. serviceInvoiceItem.
func (d *Descriptor) Name() string {
	return d.name
}

func (d *Descriptor) Placement() Placement {
	return d.placement
}

// Fields returns the declared fields in declaration order.
// The returned slice must not be modified.
func (d *Descriptor) Fields() []Field {
	return d.fields
}

// FieldNames returns the names of the declared fields in declaration order.
func (d *Descriptor) FieldNames() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}
	return names
}

// NumField returns the number of declared fields.
func (d *Descriptor) NumField() int {
	return len(d.fields)
}

// Field returns the field with the given name.
func (d *Descriptor) Field(name string) (Field, bool) {
	i, ok := d.index[name]
	if !ok {
		return Field{}, false
	}
	return d.fields[i], true
}

// Index returns the position of the field, or -1 if it is not declared.
func (d *Descriptor) Index(name string) int {
	i, ok := d.index[name]
	if !ok {
		return -1
	}
	return i
}

// Has reports whether the field is declared.
func (d *Descriptor) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ElementType returns the type of the items of a list field.
// It returns nil if the field is not a list or if its items are opaque.
func (d *Descriptor) ElementType(name string) *Descriptor {
	f, ok := d.Field(name)
	if !ok || f.Kind != KindList {
		return nil
	}
	return f.Type
}

func (d *Descriptor) String() string {
	return d.typeName
}

package entity

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/types"
	"github.com/saasukit/saasu/xmltree"
)

// ExtraKey is the JSON key holding the extra-data bag.
const ExtraKey = "@extra"

// MarshalJSON encodes the non-NULL fields of the entity to a JSON object.
// Raw list items are encoded as XML strings and the extra-data bag,
// if not empty, as an object under ExtraKey.
func (e *Entity) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	err := e.marshalJSON(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *Entity) marshalJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')

	var notFirst bool
	for i, f := range e.desc.Fields() {
		v := e.values[i]
		if f.Internal || types.IsNull(v) {
			continue
		}

		if notFirst {
			buf.WriteString(", ")
		}
		notFirst = true

		if err := writeJSONString(buf, f.Name); err != nil {
			return err
		}
		buf.WriteString(": ")

		if err := marshalJSONValue(buf, v); err != nil {
			return errors.Wrapf(err, "%s.%s", e.Name(), f.Name)
		}
	}

	if e.extra.Len() > 0 {
		if notFirst {
			buf.WriteString(", ")
		}

		if err := writeJSONString(buf, ExtraKey); err != nil {
			return err
		}
		buf.WriteString(": {")
		for i, p := range e.extra.pairs {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := writeJSONString(buf, p.Name); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := writeJSONString(buf, p.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return nil
}

func marshalJSONValue(buf *bytes.Buffer, v types.Value) error {
	switch v.Type() {
	case types.TypeNull:
		buf.WriteString("null")
	case types.TypeText, types.TypeRaw:
		s := v.String()
		if rv := types.AsRaw(v); rv != nil && rv.Node() != nil {
			s = rv.Node().String()
		}
		return writeJSONString(buf, s)
	case types.TypeEntity:
		sub, ok := types.AsObject(v).(*Entity)
		if !ok || sub == nil {
			return errors.Errorf("unsupported object %T", types.AsObject(v))
		}
		return sub.marshalJSON(buf)
	case types.TypeList:
		buf.WriteByte('[')
		err := types.AsList(v).Iterate(func(i int, item types.Value) error {
			if i > 0 {
				buf.WriteString(", ")
			}
			return marshalJSONValue(buf, item)
		})
		if err != nil {
			return err
		}
		buf.WriteByte(']')
	default:
		return errors.Errorf("unexpected type: %s", v.Type())
	}

	return nil
}

// UnmarshalJSON resets the entity and fills it from a JSON object.
// Keys that are not declared fields are stored in the extra-data bag,
// as well as the content of the ExtraKey object.
func (e *Entity) UnmarshalJSON(data []byte) error {
	e.Reset()

	return jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		name := string(key)

		if name == ExtraKey {
			if dataType != jsonparser.Object {
				return errors.Errorf("%s: %s must be an object", e.Name(), ExtraKey)
			}
			return jsonparser.ObjectEach(value, func(k []byte, v []byte, dt jsonparser.ValueType, _ int) error {
				s, err := jsonString(v, dt)
				if err != nil {
					return err
				}
				return e.SetExtra(string(k), s)
			})
		}

		f, ok := e.desc.Field(name)
		if !ok {
			s, err := jsonString(value, dataType)
			if err != nil {
				return err
			}
			return e.SetExtra(name, s)
		}

		v, err := parseJSONValue(f, dataType, value)
		if err != nil {
			return errors.Wrapf(err, "%s.%s", e.Name(), name)
		}

		return e.Set(name, v)
	})
}

func parseJSONValue(f schema.Field, dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.String, jsonparser.Number, jsonparser.Boolean:
		s, err := jsonString(data, dataType)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case jsonparser.Object:
		if f.Kind != schema.KindEntity || f.Type == nil {
			return nil, errors.New("field does not hold a typed entity")
		}
		sub := New(f.Type)
		if err := sub.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return types.NewEntityValue(sub), nil
	case jsonparser.Array:
		if f.Kind != schema.KindList {
			return nil, errors.New("field is not a list")
		}
		return parseJSONList(f, data)
	default:
		return nil, errors.Errorf("unsupported JSON type: %v", dataType)
	}
}

func parseJSONList(f schema.Field, data []byte) (types.Value, error) {
	l := types.NewListValue()

	var ierr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if ierr != nil {
			return
		}
		if err != nil {
			ierr = err
			return
		}

		switch {
		case f.Type != nil && dataType == jsonparser.Object:
			sub := New(jsonItemType(f, value))
			if err := sub.UnmarshalJSON(value); err != nil {
				ierr = err
				return
			}
			l.Append(types.NewEntityValue(sub))
		case f.Type == nil && dataType == jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				ierr = err
				return
			}
			n, err := xmltree.Parse([]byte(s))
			if err != nil {
				ierr = err
				return
			}
			l.Append(types.NewRawValue(n))
		default:
			ierr = errors.Errorf("unexpected list item of type %v", dataType)
		}
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if ierr != nil {
		return nil, ierr
	}

	return l, nil
}

// jsonItemType returns the first item type of f declaring every key of the object,
// or f.Type if there is none.
func jsonItemType(f schema.Field, data []byte) *schema.Descriptor {
	if len(f.Alternatives) == 0 {
		return f.Type
	}

	for _, d := range f.ItemTypes() {
		declared := true
		_ = jsonparser.ObjectEach(data, func(key []byte, _ []byte, _ jsonparser.ValueType, _ int) error {
			if name := string(key); name != ExtraKey && !d.Has(name) {
				declared = false
				return errUndeclared
			}
			return nil
		})
		if declared {
			return d
		}
	}

	return f.Type
}

var errUndeclared = errors.New("undeclared key")

// writeJSONString writes s as a JSON string. Markup characters are kept as is
// so that raw XML items stay readable.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return errors.WithStack(err)
	}

	// Encode terminates the value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

func jsonString(data []byte, dataType jsonparser.ValueType) (string, error) {
	if dataType == jsonparser.String {
		s, err := jsonparser.ParseString(data)
		return s, errors.WithStack(err)
	}

	return string(data), nil
}

// Package xmlcodec converts entities to and from the XML dialect of the accounting web service.
package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/entity"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/types"
	"go.uber.org/zap"
)

var defaultEncoder = NewEncoder()

// Marshal encodes e with the default encoder.
func Marshal(e *entity.Entity) ([]byte, error) {
	return defaultEncoder.Marshal(e)
}

// An Encoder writes entities as indented XML documents.
// It can be shared by concurrent goroutines.
type Encoder struct {
	opts options
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{opts: newOptions(opts)}
}

// Marshal returns the XML encoding of e.
//
// The root element is named after the entity type. NULL fields and internal fields
// are omitted, identifiers are written first, as attributes or elements depending on
// the placement of the entity type, and every element left without content is removed.
func (enc *Encoder) Marshal(e *entity.Entity) ([]byte, error) {
	var buf bytes.Buffer

	s := encodeState{w: xml.NewEncoder(&buf), logger: enc.opts.logger}
	s.w.Indent("", enc.opts.indent)

	if err := s.encodeEntity(e, e.Name()); err != nil {
		return nil, err
	}
	if err := s.w.Flush(); err != nil {
		return nil, errors.WithStack(err)
	}

	return removeEmptyElements(buf.Bytes()), nil
}

// Encode writes the XML encoding of e to w.
func (enc *Encoder) Encode(w io.Writer, e *entity.Entity) error {
	data, err := enc.Marshal(e)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return errors.WithStack(err)
}

type encodeState struct {
	w      *xml.Encoder
	logger *zap.Logger
}

func (s *encodeState) encodeEntity(e *entity.Entity, tag string) error {
	d := e.Descriptor()
	start := xml.StartElement{Name: xml.Name{Local: tag}}

	fields := orderFields(d.Fields())

	for _, f := range fields {
		if !isAttribute(d, f) {
			continue
		}

		v, err := e.Get(f.Name)
		if err != nil {
			return err
		}
		if types.IsNull(v) || v.Type() == types.TypeList || v.Type() == types.TypeEntity {
			continue
		}

		// empty identifiers are dropped entirely
		if id := types.AsString(v); id != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: f.Name}, Value: id})
		}
	}

	if err := s.w.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "cannot encode %s", tag)
	}

	for _, f := range fields {
		if f.Internal {
			continue
		}

		v, err := e.Get(f.Name)
		if err != nil {
			return err
		}
		if types.IsNull(v) {
			continue
		}

		switch v.Type() {
		case types.TypeList:
			err = s.encodeList(e, f.Name, types.AsList(v))
		case types.TypeEntity:
			sub, ok := types.AsObject(v).(*entity.Entity)
			if !ok || sub == nil {
				return errors.Errorf("%s.%s: unsupported object %T", e.Name(), f.Name, types.AsObject(v))
			}
			err = s.encodeEntity(sub, f.Name)
		default:
			if isAttribute(d, f) {
				continue
			}
			err = s.encodeText(f.Name, types.AsString(v))
		}
		if err != nil {
			return err
		}
	}

	return errors.WithStack(s.w.EncodeToken(start.End()))
}

func (s *encodeState) encodeList(e *entity.Entity, tag string, l *types.ListValue) error {
	start := xml.StartElement{Name: xml.Name{Local: tag}}
	if err := s.w.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "cannot encode %s", tag)
	}

	err := l.Iterate(func(_ int, item types.Value) error {
		// only entities are written, raw fragments are dropped
		sub, ok := types.AsObject(item).(*entity.Entity)
		if !ok || sub == nil {
			s.logger.Debug("skipping list item that is not an entity",
				zap.String("entity", e.Name()),
				zap.String("field", tag),
				zap.Stringer("type", item.Type()))
			return nil
		}

		return s.encodeEntity(sub, sub.Name())
	})
	if err != nil {
		return err
	}

	return errors.WithStack(s.w.EncodeToken(start.End()))
}

func (s *encodeState) encodeText(tag, value string) error {
	start := xml.StartElement{Name: xml.Name{Local: tag}}
	if err := s.w.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "cannot encode %s", tag)
	}
	if value != "" {
		if err := s.w.EncodeToken(xml.CharData(value)); err != nil {
			return errors.Wrapf(err, "cannot encode %s", tag)
		}
	}
	return errors.WithStack(s.w.EncodeToken(start.End()))
}

// orderFields returns the fields with the identifiers first.
func orderFields(fields []schema.Field) []schema.Field {
	ordered := make([]schema.Field, 0, len(fields))
	for _, name := range []string{schema.FieldID, schema.FieldLastModifiedByID} {
		for _, f := range fields {
			if f.Name == name {
				ordered = append(ordered, f)
			}
		}
	}
	for _, f := range fields {
		if !isIdentifier(f.Name) {
			ordered = append(ordered, f)
		}
	}
	return ordered
}

func isIdentifier(name string) bool {
	return name == schema.FieldID || name == schema.FieldLastModifiedByID
}

func isAttribute(d *schema.Descriptor, f schema.Field) bool {
	return !f.Internal && isIdentifier(f.Name) && d.Placement() == schema.PlacementAttribute
}

package xmlcodec

import (
	"bytes"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/entity"
	"github.com/saasukit/saasu/internal/stringutil"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/types"
	"github.com/saasukit/saasu/xmltree"
	"go.uber.org/zap"
)

var defaultDecoder = NewDecoder()

// Unmarshal decodes data into e with the default decoder.
func Unmarshal(data []byte, e *entity.Entity) error {
	return defaultDecoder.Unmarshal(data, e)
}

// A Decoder fills entities from XML documents.
// It can be shared by concurrent goroutines, as long as they decode into different entities.
type Decoder struct {
	opts options
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{opts: newOptions(opts)}
}

// Unmarshal decodes the document data into e, in place.
//
// The root element of the document is matched with e. Child elements and attributes
// are matched with the declared fields of e by name; tags prefixed with the entity name,
// such as invoiceId for the field id of an invoice, are matched as well.
// Anything that is not declared ends up in the extra-data bag of e.
// Declared fields that are not found in the document are set to NULL.
//
// If data is not a well-formed document, a *xmltree.ParseError is returned
// and e is left untouched.
func (dec *Decoder) Unmarshal(data []byte, e *entity.Entity) error {
	return dec.Decode(bytes.NewReader(data), e)
}

// Decode reads a whole document from r and decodes it into e.
func (dec *Decoder) Decode(r io.Reader, e *entity.Entity) error {
	root, err := xmltree.ParseReader(r)
	if err != nil {
		return err
	}

	s := decodeState{logger: dec.opts.logger}
	return s.decodeEntity(root, e)
}

type decodeState struct {
	logger *zap.Logger
}

func (s *decodeState) decodeEntity(n *xmltree.Node, e *entity.Entity) error {
	d := e.Descriptor()
	used := make([]bool, d.NumField())

	e.Extra().Reset()

	for _, child := range n.Children {
		name := resolveName(d, child.Name)

		f, ok := d.Field(name)
		if !ok {
			if err := s.setExtra(e, name, child.Text); err != nil {
				return err
			}
			continue
		}
		if f.Internal {
			continue
		}

		i := d.Index(name)
		first := !used[i]
		used[i] = true

		if err := s.decodeField(e, f, child, first); err != nil {
			return err
		}
	}

	for _, a := range n.Attrs {
		name := resolveName(d, a.Name)

		f, ok := d.Field(name)
		if !ok {
			if err := s.setExtra(e, name, a.Value); err != nil {
				return err
			}
			continue
		}
		if f.Internal {
			continue
		}

		used[d.Index(name)] = true

		var err error
		if strings.TrimSpace(a.Value) != "" {
			err = e.SetText(name, a.Value)
		} else {
			err = e.SetNull(name)
		}
		if err != nil {
			return err
		}
	}

	// fields absent from the document are cleared
	for i, f := range d.Fields() {
		if used[i] || f.Internal {
			continue
		}
		if err := e.SetNull(f.Name); err != nil {
			return err
		}
	}

	return nil
}

func (s *decodeState) decodeField(e *entity.Entity, f schema.Field, n *xmltree.Node, first bool) error {
	cur, err := e.Get(f.Name)
	if err != nil {
		return err
	}

	switch {
	case f.Kind == schema.KindList:
		// a list found twice in the same element is merged
		l := types.AsList(cur)
		if first || l == nil {
			l = types.NewListValue()
		}

		for _, item := range n.Children {
			if f.Type == nil {
				s.logger.Debug("keeping opaque list item",
					zap.String("entity", e.Name()),
					zap.String("field", f.Name),
					zap.String("item", item.Name))
				l.Append(types.NewRawValue(item))
				continue
			}

			sub := entity.New(f.ItemType(item.Name))
			if err := s.decodeEntity(item, sub); err != nil {
				return err
			}
			l.Append(types.NewEntityValue(sub))
		}

		return e.Set(f.Name, l)
	case cur.Type() == types.TypeEntity && n.HasContent():
		sub, ok := types.AsObject(cur).(*entity.Entity)
		if !ok || sub == nil {
			return errors.Errorf("%s.%s: unsupported object %T", e.Name(), f.Name, types.AsObject(cur))
		}
		return s.decodeEntity(n, sub)
	case f.Kind == schema.KindEntity && f.Type != nil && types.IsNull(cur) && len(n.Children) > 0:
		sub := entity.New(f.Type)
		if err := s.decodeEntity(n, sub); err != nil {
			return err
		}
		return e.SetEntity(f.Name, sub)
	case n.TrimmedText() != "":
		return e.SetText(f.Name, n.Text)
	}

	// empty elements leave the field untouched
	return nil
}

func (s *decodeState) setExtra(e *entity.Entity, name, value string) error {
	s.logger.Debug("storing undeclared field in extra data",
		zap.String("entity", e.Name()),
		zap.String("field", name))

	return e.SetExtra(name, value)
}

// resolveName returns the field name a tag or attribute refers to.
// List responses prefix the fields of each item with the item's entity name,
// e.g. invoiceId, which is matched with the field id.
func resolveName(d *schema.Descriptor, tag string) string {
	if d.Has(tag) {
		return tag
	}

	rest, ok := stringutil.CutPrefixFoldFirst(tag, d.Name())
	if !ok {
		return tag
	}

	return stringutil.LcFirst(rest)
}

// Package codecutil implements the commands of the saasu CLI.
package codecutil

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/entity"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/xmlcodec"
	"github.com/saasukit/saasu/xmltree"
)

// ErrTypeRequired is returned when the type of a document cannot be detected.
var ErrTypeRequired = errors.New("entity type required")

// Encode reads a JSON object from r, fills an entity of type d with it
// and writes its XML encoding to w.
func Encode(r io.Reader, w io.Writer, d *schema.Descriptor, enc *xmlcodec.Encoder) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.WithStack(err)
	}

	e := entity.New(d)
	if err := e.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "invalid JSON entity")
	}

	out, err := enc.Marshal(e)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return nil
	}

	_, err = w.Write(append(out, '\n'))
	return errors.WithStack(err)
}

// Decode reads an XML document from r and writes the decoded entity to w as indented JSON.
// If d is nil, the type is looked up in reg using the name of the root element.
func Decode(r io.Reader, w io.Writer, reg *schema.Registry, d *schema.Descriptor, dec *xmlcodec.Decoder) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.WithStack(err)
	}

	e, err := decode(data, reg, d, dec)
	if err != nil {
		return err
	}

	return writeJSON(w, e)
}

func decode(data []byte, reg *schema.Registry, d *schema.Descriptor, dec *xmlcodec.Decoder) (*entity.Entity, error) {
	if d == nil {
		var err error
		d, err = DetectType(data, reg)
		if err != nil {
			return nil, err
		}
	}

	e := entity.New(d)
	if err := dec.Unmarshal(data, e); err != nil {
		return nil, err
	}

	return e, nil
}

// DetectType returns the registered type whose name is the root element of the document.
func DetectType(data []byte, reg *schema.Registry) (*schema.Descriptor, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}

	d, err := reg.Lookup(root.Name)
	if err != nil {
		return nil, errors.Wrapf(ErrTypeRequired, "no type named after root element %q", root.Name)
	}

	return d, nil
}

func writeJSON(w io.Writer, e *entity.Entity) error {
	data, err := e.MarshalJSON()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return errors.WithStack(enc.Encode(json.RawMessage(data)))
}

// OpenInput opens the named file, or returns the standard input if name is empty or "-".
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

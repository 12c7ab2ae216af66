// Package xmltree parses small XML documents into an in-memory element tree.
//
// Only the element structure is kept: names (without namespace), attributes in
// document order, child elements and the character data directly under each
// element. Comments, processing instructions and directives are dropped.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Attr is an attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Node is an XML element.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	// Text holds the character data found directly under the element,
	// concatenated in document order.
	Text string
}

// ParseError is returned when the input is not a well-formed document.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return "xml parse error on line " + strconv.Itoa(e.Line) + ": " + e.Msg
	}
	return "xml parse error: " + e.Msg
}

// Parse reads a whole document and returns its root element.
func Parse(data []byte) (*Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader is like Parse but reads the document from r.
func ParseReader(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node
	var text []*strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newParseError(dec, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, errors.WithStack(&ParseError{Line: line(dec), Msg: "multiple root elements"})
			}

			n := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				// namespace declarations are not data
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
			text = append(text, new(strings.Builder))
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, errors.WithStack(&ParseError{Line: line(dec), Msg: "character data outside of the root element"})
				}
				continue
			}
			text[len(text)-1].Write(t)
		}
	}

	if root == nil {
		return nil, errors.WithStack(&ParseError{Msg: "no root element"})
	}

	return root, nil
}

func newParseError(dec *xml.Decoder, err error) error {
	var serr *xml.SyntaxError
	if errors.As(err, &serr) {
		return errors.WithStack(&ParseError{Line: serr.Line, Msg: serr.Msg})
	}

	return errors.WithStack(&ParseError{Line: line(dec), Msg: err.Error()})
}

func line(dec *xml.Decoder) int {
	l, _ := dec.InputPos()
	return l
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// TrimmedText returns the direct character data of n without surrounding whitespace.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}

// HasContent reports whether n carries anything: child elements, attributes
// or non-blank text.
func (n *Node) HasContent() bool {
	return len(n.Children) > 0 || len(n.Attrs) > 0 || n.TrimmedText() != ""
}

// String encodes n back to compact XML.
func (n *Node) String() string {
	var buf bytes.Buffer
	_ = n.Encode(xml.NewEncoder(&buf))
	return buf.String()
}

// Encode writes n and its descendants to enc and flushes it.
func (n *Node) Encode(enc *xml.Encoder) error {
	if err := n.encode(enc); err != nil {
		return err
	}

	return enc.Flush()
}

func (n *Node) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "cannot encode element %q", n.Name)
	}

	if n.TrimmedText() != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return errors.Wrapf(err, "cannot encode text of %q", n.Name)
		}
	}

	for _, c := range n.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

// Package saasu converts entities of the Saasu accounting web service to and from XML.
//
// The web service schema is irregular: identifiers are written as attributes by some
// entity types and as child elements by others, list responses prefix the fields of each
// item with the name of the item type, and responses carry fields that are not documented.
// Entity types are described by schema descriptors, declared in the catalog package,
// and entities are plain values holding one value per declared field:
//
//	inv, err := saasu.New("invoice")
//	if err != nil {
//		return err
//	}
//	err = saasu.Unmarshal(data, inv)
//	...
//	date, _ := inv.Text("date")
//
// Undeclared fields found while decoding are kept in the extra data of the entity.
//
//	amount, ok := inv.GetExtra("amountOwed")
//
// Encoding an entity returns an indented document without empty elements.
//
//	data, err := saasu.Marshal(inv)
//
// The xmlcodec package gives access to encoders and decoders with custom options.
package saasu

import (
	"github.com/saasukit/saasu/catalog"
	"github.com/saasukit/saasu/entity"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/xmlcodec"
)

// New creates an empty entity of the catalog type typeName.
func New(typeName string) (*entity.Entity, error) {
	d, err := catalog.Default().Lookup(typeName)
	if err != nil {
		return nil, err
	}

	return entity.New(d), nil
}

// Marshal returns the XML encoding of e.
func Marshal(e *entity.Entity) ([]byte, error) {
	return xmlcodec.Marshal(e)
}

// Unmarshal decodes the XML document data into e.
func Unmarshal(data []byte, e *entity.Entity) error {
	return xmlcodec.Unmarshal(data, e)
}

// Registry returns the registry of the catalog types.
func Registry() *schema.Registry {
	return catalog.Default()
}

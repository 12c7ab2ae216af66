package commands

import (
	"github.com/saasukit/saasu"
	"github.com/saasukit/saasu/cmd/saasu/codecutil"
	"github.com/saasukit/saasu/xmlcodec"
	"github.com/urfave/cli/v2"
)

// NewDecodeCommand returns a cli.Command for "saasu decode".
func NewDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode an XML entity as JSON",
		UsageText: "saasu decode [--type TYPE] [file]",
		Description: `The decode command reads an XML document and writes the decoded entity as JSON.
Undeclared fields are written under the "@extra" key.

$ saasu decode invoice.xml

By default, the type of the entity is the name of the root element.
List items must be decoded with an explicit type:

$ saasu decode -t invoice invoiceListItem.xml`,
		Flags: []cli.Flag{
			typeFlag(),
		},
		Action: func(c *cli.Context) error {
			d, err := lookupType(c)
			if err != nil {
				return err
			}

			r, err := codecutil.OpenInput(c.Args().First())
			if err != nil {
				return err
			}
			defer r.Close()

			logger := newLogger(c)
			defer func() { _ = logger.Sync() }()

			dec := xmlcodec.NewDecoder(xmlcodec.WithLogger(logger))
			return codecutil.Decode(r, c.App.Writer, saasu.Registry(), d, dec)
		},
	}
}

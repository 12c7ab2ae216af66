package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/cmd/saasu/codecutil"
	"github.com/saasukit/saasu/xmlcodec"
	"github.com/urfave/cli/v2"
)

// NewEncodeCommand returns a cli.Command for "saasu encode".
func NewEncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode a JSON entity as XML",
		UsageText: "saasu encode --type TYPE [file]",
		Description: `The encode command reads a JSON object and writes the XML document
expected by the web service:

$ echo '{"id": "12", "date": "2024-01-01"}' | saasu encode -t invoice
<invoice id="12">
    <date>2024-01-01</date>
</invoice>

Undeclared fields are ignored. If no file is given, the object is read from STDIN.`,
		Flags: []cli.Flag{
			typeFlag(),
		},
		Action: func(c *cli.Context) error {
			d, err := lookupType(c)
			if err != nil {
				return err
			}
			if d == nil {
				return errors.Wrap(codecutil.ErrTypeRequired, c.Command.UsageText)
			}

			r, err := codecutil.OpenInput(c.Args().First())
			if err != nil {
				return err
			}
			defer r.Close()

			logger := newLogger(c)
			defer func() { _ = logger.Sync() }()

			enc := xmlcodec.NewEncoder(xmlcodec.WithLogger(logger))
			return codecutil.Encode(r, c.App.Writer, d, enc)
		},
	}
}

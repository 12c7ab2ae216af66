package commands

import (
	"github.com/saasukit/saasu"
	"github.com/saasukit/saasu/cmd/saasu/codecutil"
	"github.com/urfave/cli/v2"
)

// NewTypesCommand returns a cli.Command for "saasu types".
func NewTypesCommand() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List the entity types",
		Action: func(c *cli.Context) error {
			return codecutil.ListTypes(c.App.Writer, saasu.Registry())
		},
	}
}

package commands

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu"
	"github.com/saasukit/saasu/cmd/saasu/codecutil"
	"github.com/saasukit/saasu/xmlcodec"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// NewScanCommand returns a cli.Command for "saasu scan".
func NewScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Report undeclared fields found in XML documents",
		UsageText: "saasu scan [--type TYPE] [--jobs N] file...",
		Description: `The scan command decodes a list of XML documents and prints, for each of them,
the fields that are not declared by the entity type:

$ saasu scan -t invoice responses/*.xml
responses/1.xml (Invoice): amountOwed, uid
responses/2.xml (Invoice): no extra data

Documents are decoded concurrently. The scan stops at the first malformed document.`,
		Flags: []cli.Flag{
			typeFlag(),
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "number of documents decoded concurrently",
				Value:   runtime.NumCPU(),
				EnvVars: []string{"SAASU_JOBS"},
			},
		},
		Action: func(c *cli.Context) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return errors.New(c.Command.UsageText)
			}

			d, err := lookupType(c)
			if err != nil {
				return err
			}

			logger := newLogger(c)
			defer func() { _ = logger.Sync() }()

			logger.Debug("scanning documents", zap.Int("files", len(paths)), zap.Int("jobs", c.Int("jobs")))

			dec := xmlcodec.NewDecoder(xmlcodec.WithLogger(logger))
			results, err := codecutil.Scan(c.Context, paths, c.Int("jobs"), saasu.Registry(), d, dec)
			if err != nil {
				return err
			}

			return codecutil.PrintScanResults(c.App.Writer, results)
		},
	}
}

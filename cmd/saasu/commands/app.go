package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saasukit/saasu"
	"github.com/saasukit/saasu/cmd/saasu/codecutil"
	"github.com/saasukit/saasu/schema"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// NewApp creates the saasu CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "saasu"
	app.Usage = "Convert Saasu entities between JSON and XML"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log debug messages to STDERR",
			EnvVars: []string{"SAASU_VERBOSE"},
		},
	}

	app.Commands = []*cli.Command{
		NewEncodeCommand(),
		NewDecodeCommand(),
		NewScanCommand(),
		NewTypesCommand(),
		NewVersionCommand(),
	}

	// inject cancelable context to all commands
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()
		<-ch
	}()

	for i := range app.Commands {
		action := app.Commands[i].Action
		app.Commands[i].Action = func(c *cli.Context) error {
			c.Context = ctx
			return action(c)
		}
	}

	app.After = func(c *cli.Context) error {
		cancel()
		return nil
	}

	return app
}

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "entity type, e.g. invoice or contact",
		EnvVars: []string{"SAASU_TYPE"},
	}
}

// lookupType returns the descriptor named by the type flag, or nil if the flag is not set.
func lookupType(c *cli.Context) (*schema.Descriptor, error) {
	name := c.String("type")
	if name == "" {
		return nil, nil
	}

	return saasu.Registry().Lookup(name)
}

func newLogger(c *cli.Context) *zap.Logger {
	return codecutil.NewLogger(c.App.ErrWriter, c.Bool("verbose"))
}

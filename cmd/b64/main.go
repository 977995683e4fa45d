package main

import (
	"fmt"
	"os"

	"github.com/flow-lab/b64/internal/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if err != nil {
		logFailure(logger.NewLogger(false), err)
		os.Exit(1)
	}
}

// logFailure logs err as a single line. zap.Error would add the pkg/errors
// stack trace as errorVerbose.
func logFailure(log logger.Logger, err error) {
	log.Error("b64 failed", zap.String("error", err.Error()))
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "b64"
	app.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
	app.Usage = "standard base64 codec for stdin/stdout"
	app.Description = "b64 encode < raw > encoded\nb64 decode < encoded > raw"
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "log debug information to stderr",
			EnvVars: []string{"B64_VERBOSE"},
		},
	}

	app.Before = func(c *cli.Context) error {
		log := logger.NewLoggerWithWriter(c.Bool("verbose"), c.App.ErrWriter)
		c.Context = logger.WithLogger(c.Context, log)
		return nil
	}

	app.After = func(c *cli.Context) error {
		// stderr does not support fsync on most platforms
		_ = logger.FromContext(c.Context).Sync()
		return nil
	}

	app.Commands = []*cli.Command{
		encodeCommand(),
		decodeCommand(),
	}

	app.Action = func(c *cli.Context) error {
		if c.Args().Present() {
			return errors.Errorf("unknown command %q, try: b64 --help", c.Args().First())
		}
		return errors.New("missing command, try: b64 --help")
	}

	return app
}

package main

import (
	"github.com/flow-lab/b64/internal/logger"
	"github.com/flow-lab/b64/internal/reader"
	"github.com/flow-lab/b64/internal/writer"
	"github.com/flow-lab/b64/pkg/base64"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func ioFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "use `STRING` as input instead of stdin",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read input from `FILE` (- for stdin)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write output to `FILE` (- for stdout)",
			Value:   writer.Stdout,
		},
	}
}

var encodeCommand = func() *cli.Command {
	return &cli.Command{
		Name:   "encode",
		Usage:  "encodes stdin to base64",
		Flags:  ioFlags(),
		Action: codecAction(base64.ModeEncode),
	}
}

var decodeCommand = func() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decodes base64 from stdin",
		Flags: append(ioFlags(),
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "fail on characters outside the alphabet and on bad length or padding",
				EnvVars: []string{"B64_STRICT"},
			},
		),
		Action: codecAction(base64.ModeDecode),
	}
}

func codecAction(mode base64.Mode) cli.ActionFunc {
	return func(c *cli.Context) error {
		log := logger.FromContext(c.Context)

		input, err := reader.Read(reader.Options{
			Input: c.String("input"),
			File:  c.String("file"),
			Stdin: c.App.Reader,
		})
		if err != nil {
			return err
		}
		log.Debug("read input", zap.Stringer("mode", mode), zap.Int("bytes", len(input)))

		output, err := base64.Transform(mode, input, c.Bool("strict"))
		if err != nil {
			return errors.Wrap(err, mode.String())
		}

		if err := writer.Write(c.App.Writer, c.String("output"), output); err != nil {
			return err
		}
		log.Debug("wrote output", zap.Stringer("mode", mode), zap.Int("bytes", len(output)))

		return nil
	}
}

package reader

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Stdin is the value of File that selects standard input.
const Stdin = "-"

var ErrConflictingSources = errors.New("--input and --file are mutually exclusive")

// Options describes where codec input comes from.
type Options struct {
	// Input is used verbatim when set.
	Input string
	// File is read whole when set to anything but "" or "-".
	File string
	// Stdin is read until EOF when neither Input nor File select a source.
	Stdin io.Reader
}

// Read returns all bytes of the selected source.
func Read(opts Options) ([]byte, error) {
	if opts.Input != "" && opts.File != "" {
		return nil, ErrConflictingSources
	}

	if opts.Input != "" {
		return []byte(opts.Input), nil
	}

	if opts.File != "" && opts.File != Stdin {
		b, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, errors.Wrapf(err, "read file %s", opts.File)
		}
		return b, nil
	}

	return ReadAll(opts.Stdin)
}

// ReadAll reads r until EOF.
func ReadAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.New("no input reader")
	}

	b, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return b, nil
}

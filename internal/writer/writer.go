package writer

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Stdout is the value of path that selects the default writer.
const Stdout = "-"

// Write writes data verbatim to w, or to the file at path when path is set
// to anything but "" or "-". Files are created or truncated.
func Write(w io.Writer, path string, data []byte) error {
	if path != "" && path != Stdout {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Wrapf(err, "write file %s", path)
		}
		return nil
	}

	n, err := w.Write(data)
	if err != nil {
		return errors.Wrap(err, "write stdout")
	}
	if n != len(data) {
		return errors.Wrapf(io.ErrShortWrite, "write stdout: %d of %d bytes", n, len(data))
	}
	return nil
}

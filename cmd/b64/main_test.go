package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flow-lab/b64/internal/logger"
	"github.com/flow-lab/b64/internal/mocks"
	"github.com/flow-lab/b64/pkg/base64"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin io.Reader, stdout io.Writer, args ...string) (string, error) {
	t.Helper()

	var stderr bytes.Buffer
	app := newApp()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"b64"}, args...))
	return stderr.String(), err
}

func TestEncodeCommand(t *testing.T) {
	for _, tt := range []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"A", "QQ=="},
		{"AB", "QUI="},
		{"ABC", "QUJD"},
		{"ABCD", "QUJDRA=="},
		{"line\n", "bGluZQo="},
	} {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer

			_, err := run(t, strings.NewReader(tt.input), &out, "encode")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestDecodeCommand(t *testing.T) {
	for _, tt := range []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"QQ==", "A"},
		{"QUI=", "AB"},
		{"QUJD", "ABC"},
		{"QUJDRA==", "ABCD"},
	} {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer

			_, err := run(t, strings.NewReader(tt.input), &out, "decode")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}

	t.Run("Should decode --input", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader(""), &out, "decode", "--input", "QUJDRA==")

		require.NoError(t, err)
		assert.Equal(t, "ABCD", out.String())
	})

	t.Run("Should be lenient by default", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader("QQ"), &out, "decode")

		require.NoError(t, err)
		assert.Equal(t, []byte{'A', 0, 0}, out.Bytes())
	})

	t.Run("Should fail with --strict", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader("QQ\n"), &out, "decode", "--strict")

		assert.ErrorIs(t, err, base64.ErrMalformedInput)
		assert.Equal(t, 0, out.Len())
	})

	t.Run("Should read strict from environment", func(t *testing.T) {
		t.Setenv("B64_STRICT", "true")
		var out bytes.Buffer

		_, err := run(t, strings.NewReader("Q!=="), &out, "decode")

		assert.ErrorIs(t, err, base64.ErrMalformedInput)
	})
}

func TestFiles(t *testing.T) {
	t.Run("Should round trip through files", func(t *testing.T) {
		dir := t.TempDir()
		raw := filepath.Join(dir, "raw")
		encoded := filepath.Join(dir, "encoded")
		decoded := filepath.Join(dir, "decoded")
		content := []byte{0x00, 0x10, 0x83, 0xff, '\n'}
		require.NoError(t, os.WriteFile(raw, content, 0600))

		var out bytes.Buffer
		_, err := run(t, strings.NewReader(""), &out, "encode", "--file", raw, "--output", encoded)
		require.NoError(t, err)

		_, err = run(t, strings.NewReader(""), &out, "decode", "-f", encoded, "-o", decoded)
		require.NoError(t, err)

		assert.Equal(t, 0, out.Len())
		b, err := os.ReadFile(decoded)
		require.NoError(t, err)
		assert.Equal(t, content, b)
	})

	t.Run("Should reject --input with --file", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader(""), &out, "encode", "--input", "A", "--file", "x")

		assert.NotNil(t, err)
	})
}

func TestIOFailures(t *testing.T) {
	t.Run("Should fail when stdin fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eio := errors.New("input/output error")
		r := mocks.NewMockReader(ctrl)
		r.EXPECT().
			Read(gomock.Any()).
			Return(0, eio).
			Times(1)

		var out bytes.Buffer
		_, err := run(t, r, &out, "encode")

		assert.ErrorIs(t, err, eio)
	})

	t.Run("Should fail when stdout fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		epipe := errors.New("broken pipe")
		w := mocks.NewMockWriter(ctrl)
		w.EXPECT().
			Write(gomock.Eq([]byte("QUJD"))).
			Return(0, epipe).
			Times(1)

		_, err := run(t, strings.NewReader("ABC"), w, "encode")

		assert.ErrorIs(t, err, epipe)
	})
}

func TestApp(t *testing.T) {
	t.Run("Should require a command", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader(""), &out)

		assert.NotNil(t, err)
	})

	t.Run("Should reject unknown command", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader(""), &out, "rot13")

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "rot13")
	})

	t.Run("Should log debug with --verbose", func(t *testing.T) {
		var out bytes.Buffer

		stderr, err := run(t, strings.NewReader("ABCD"), &out, "--verbose", "encode")

		require.NoError(t, err)
		assert.Equal(t, "QUJDRA==", out.String())
		assert.Contains(t, stderr, "read input")
		assert.Contains(t, stderr, "wrote output")
	})

	t.Run("Should print version alongside --verbose", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader(""), &out, "--verbose", "--version")

		require.NoError(t, err)
		assert.Contains(t, out.String(), version)
	})

	t.Run("Should print version with -v", func(t *testing.T) {
		var out bytes.Buffer

		_, err := run(t, strings.NewReader(""), &out, "-v")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "b64 version")
	})

	t.Run("Should log debug with -V", func(t *testing.T) {
		var out bytes.Buffer

		stderr, err := run(t, strings.NewReader("QUJD"), &out, "-V", "decode")

		require.NoError(t, err)
		assert.Equal(t, "ABC", out.String())
		assert.Contains(t, stderr, "read input")
	})

	t.Run("Should stay quiet by default", func(t *testing.T) {
		var out bytes.Buffer

		stderr, err := run(t, strings.NewReader("ABCD"), &out, "encode")

		require.NoError(t, err)
		assert.Empty(t, stderr)
	})
}

func TestLogFailure(t *testing.T) {
	t.Run("Should log errors on a single line without stack trace", func(t *testing.T) {
		var stderr bytes.Buffer
		err := errors.Wrap(base64.ErrMalformedInput, "decode")

		logFailure(logger.NewLoggerWithWriter(false, &stderr), err)

		line := strings.TrimSuffix(stderr.String(), "\n")
		assert.NotContains(t, line, "\n")
		assert.NotContains(t, line, "errorVerbose")
		assert.Contains(t, line, "decode: malformed base64 input")
	})
}

package base64

import (
	"github.com/pkg/errors"
)

// Mode selects the direction of Transform.
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

var ErrUnknownMode = errors.New("unknown mode")

func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ParseMode maps "encode" and "decode" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "encode":
		return ModeEncode, nil
	case "decode":
		return ModeDecode, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// Transform encodes or decodes src. With strict set, decoding uses
// DecodeStrict; encoding never fails.
func Transform(mode Mode, src []byte, strict bool) ([]byte, error) {
	switch mode {
	case ModeEncode:
		return Encode(src), nil
	case ModeDecode:
		if strict {
			return DecodeStrict(src)
		}
		return Decode(src), nil
	}
	return nil, errors.Wrapf(ErrUnknownMode, "%d", int(mode))
}

package base64

import (
	"github.com/pkg/errors"
)

// ErrMalformedInput is returned by DecodeStrict for input Encode cannot produce.
var ErrMalformedInput = errors.New("malformed base64 input")

// EncodedLen returns the length in bytes of the encoding of n source bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoding of n
// encoded bytes, before padding is truncated.
func DecodedLen(n int) int {
	return (n + 3) / 4 * 3
}

// Encode returns the padded base64 encoding of src.
func Encode(src []byte) []byte {
	dst := make([]byte, 0, EncodedLen(len(src)))

	for i := 0; i < len(src); i += 3 {
		var group [3]byte
		n := copy(group[:], src[i:])

		v := uint32(group[0])<<16 | uint32(group[1])<<8 | uint32(group[2])
		chars := [4]byte{
			Forward(byte(v >> 18)),
			Forward(byte(v >> 12)),
			Forward(byte(v >> 6)),
			Forward(byte(v)),
		}

		// n bytes carry 8n bits, which need n+1 characters
		dst = append(dst, chars[:n+1]...)
	}

	for len(dst)%4 != 0 {
		dst = append(dst, Pad)
	}

	return dst
}

// Decode returns the bytes represented by src.
//
// Every group of 4 characters yields 3 bytes, and one byte is dropped from
// the end for each trailing '=' in src. Characters outside the alphabet count
// as zero and a final group shorter than 4 characters is zero-filled.
func Decode(src []byte) []byte {
	dst := make([]byte, 0, DecodedLen(len(src)))

	for i := 0; i < len(src); i += 4 {
		var group [4]byte
		for j, c := range src[i:min(i+4, len(src))] {
			group[j] = Reverse(c)
		}

		v := uint32(group[0])<<18 | uint32(group[1])<<12 | uint32(group[2])<<6 | uint32(group[3])
		dst = append(dst, byte(v>>16), byte(v>>8), byte(v))
	}

	pad := min(trailingPadding(src), len(dst))

	return dst[:len(dst)-pad]
}

// DecodeStrict decodes src like Decode but returns an error wrapping
// ErrMalformedInput when src is not a canonical padded encoding.
func DecodeStrict(src []byte) ([]byte, error) {
	if len(src)%4 != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "length %d is not a multiple of 4", len(src))
	}

	pad := trailingPadding(src)
	if pad > 2 {
		return nil, errors.Wrapf(ErrMalformedInput, "%d padding characters", pad)
	}

	for i, c := range src[:len(src)-pad] {
		if !IsValid(c) {
			return nil, errors.Wrapf(ErrMalformedInput, "illegal character %q at offset %d", c, i)
		}
	}

	// 2 padding characters leave 4 unused bits in the last character, 1 leaves 2
	if pad > 0 {
		last := len(src) - pad - 1
		if Reverse(src[last])&(1<<(2*pad)-1) != 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "non-zero trailing bits at offset %d", last)
		}
	}

	return Decode(src), nil
}

func trailingPadding(src []byte) int {
	n := 0
	for i := len(src) - 1; i >= 0 && src[i] == Pad; i-- {
		n++
	}
	return n
}

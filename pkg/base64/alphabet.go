package base64

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Pad marks trailing bytes of the last group that are not part of the data.
	Pad byte = '='

	invalid = 0xff
)

var (
	encodeTable [64]byte
	decodeTable [256]byte
)

func init() {
	copy(encodeTable[:], alphabet)

	for i := range decodeTable {
		decodeTable[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = byte(i)
	}
}

// Forward returns the alphabet character for a 6-bit index.
// Only the low 6 bits of index are used.
func Forward(index byte) byte {
	return encodeTable[index&0x3f]
}

// Reverse returns the 6-bit index of c. Padding and any other character
// outside the alphabet map to 0.
func Reverse(c byte) byte {
	if v := decodeTable[c]; v != invalid {
		return v
	}
	return 0
}

// IsValid reports whether c belongs to the alphabet.
func IsValid(c byte) bool {
	return decodeTable[c] != invalid
}

// Package base64 implements standard base64 encoding as defined in RFC 4648
// Section 4: the alphabet A-Z a-z 0-9 + / with '=' padding, no line wrapping.
//
// Encode is total. Decode is lenient: characters outside the alphabet decode
// as zero bits and a trailing partial group is treated as zero-filled, which
// keeps it compatible with older tooling that produced such output.
// DecodeStrict rejects anything Encode could not have produced, including
// non-zero unused bits in the last group.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64

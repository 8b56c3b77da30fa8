// Package textutils provides text decoding helpers for raw uploads.
package textutils

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"mbeck/finance-analyzer/internal/parsererror"
)

// FallbackEncodings is the ordered list of encodings tried when decoding an
// upload. The first one that decodes without loss wins.
var FallbackEncodings = []string{"utf-8", "cp1252", "iso-8859-1", "latin1"}

// cp1252 leaves a handful of code points undefined; their presence means the
// bytes were not produced by a Windows-1252 export.
var cp1252Undefined = map[byte]bool{
	0x81: true, 0x8d: true, 0x8f: true, 0x90: true, 0x9d: true,
}

// DecodeUpload converts raw upload bytes to a string by trying the fallback
// encodings in order. Returns an UndecodableInputError when none applies.
func DecodeUpload(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	if decoded, ok := decodeCP1252(raw); ok {
		return decoded, nil
	}

	// ISO-8859-1 (and its latin1 alias) assigns every byte value, so this
	// only fails on a decoder error, not on content.
	decoded, err := charmap.ISO8859_1.NewDecoder().String(string(raw))
	if err == nil {
		return decoded, nil
	}

	return "", &parsererror.UndecodableInputError{Tried: FallbackEncodings}
}

func decodeCP1252(raw []byte) (string, bool) {
	for _, b := range raw {
		if cp1252Undefined[b] {
			return "", false
		}
	}
	decoded, err := charmap.Windows1252.NewDecoder().String(string(raw))
	if err != nil {
		return "", false
	}
	return decoded, true
}

// Package unicode16 offers an optional input transform for grammars
// that need to consume UTF-16 encoded text: combi itself only ever
// matches raw bytes, so UTF-16 input must be transcoded to UTF-8 first.
package unicode16

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeUTF16LE transcodes little-endian UTF-16 bytes (with or without
// a byte-order mark) into a UTF-8 string combi can match directly.
func DecodeUTF16LE(input []byte) (string, error) {
	return decode(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), input)
}

// DecodeUTF16BE transcodes big-endian UTF-16 bytes into UTF-8.
func DecodeUTF16BE(input []byte) (string, error) {
	return decode(unicode.UTF16(unicode.BigEndian, unicode.UseBOM), input)
}

func decode(enc encoding.Encoding, input []byte) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), input)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

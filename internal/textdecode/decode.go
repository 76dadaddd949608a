// Package textdecode turns raw file bytes into text.
//
// Decoding first honors a byte-order mark, then walks a fixed list of
// encodings and keeps the first strict success. Latin-1 accepts every byte,
// so decoding always produces a result.
package textdecode

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

const (
	EncodingUTF32LE     = "utf-32-le"
	EncodingUTF32BE     = "utf-32-be"
	EncodingUTF16       = "utf-16"
	EncodingUTF16LE     = "utf-16-le"
	EncodingUTF16BE     = "utf-16-be"
	EncodingUTF8        = "utf-8"
	EncodingUTF8BOM     = "utf-8-sig"
	EncodingLatin1      = "latin-1"
	EncodingWindows1252 = "cp1252"
	EncodingISO88591    = "iso-8859-1"
)

// byteOrderMark ties a leading byte sequence to the encoding it announces.
type byteOrderMark struct {
	mark     []byte
	name     string
	encoding encoding.Encoding
}

// byteOrderMarks is ordered so that the UTF-32LE mark wins over its UTF-16LE prefix.
var byteOrderMarks = []byteOrderMark{
	{mark: []byte{0xFF, 0xFE, 0x00, 0x00}, name: EncodingUTF32LE, encoding: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)},
	{mark: []byte{0x00, 0x00, 0xFE, 0xFF}, name: EncodingUTF32BE, encoding: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)},
	{mark: []byte{0xFF, 0xFE}, name: EncodingUTF16LE, encoding: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{mark: []byte{0xFE, 0xFF}, name: EncodingUTF16BE, encoding: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	{mark: []byte{0xEF, 0xBB, 0xBF}, name: EncodingUTF8BOM, encoding: nil},
}

// fallbackDecoder is one entry of the encoding fallback chain.
type fallbackDecoder struct {
	name   string
	decode func([]byte) (string, bool)
}

var fallbackDecoders = []fallbackDecoder{
	{name: EncodingUTF8, decode: decodeUTF8},
	{name: EncodingUTF8BOM, decode: decodeUTF8WithOptionalMark},
	{name: EncodingUTF16, decode: strictDecoder(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))},
	{name: EncodingUTF16LE, decode: strictDecoder(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))},
	{name: EncodingUTF16BE, decode: strictDecoder(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))},
	{name: EncodingLatin1, decode: strictDecoder(charmap.ISO8859_1)},
	{name: EncodingWindows1252, decode: strictDecoder(charmap.Windows1252)},
	{name: EncodingISO88591, decode: strictDecoder(charmap.ISO8859_1)},
}

// utf8Mark is the UTF-8 encoding of U+FEFF.
var utf8Mark = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw bytes to text and never fails.
func Decode(raw []byte) string {
	text, _ := DecodeNamed(raw)
	return text
}

// DecodeNamed converts raw bytes to text and reports the encoding that produced it.
func DecodeNamed(raw []byte) (string, string) {
	if text, name, ok := decodeWithMark(raw); ok {
		return text, name
	}
	for _, decoder := range fallbackDecoders {
		if text, ok := decoder.decode(raw); ok {
			return normalizeNewlines(text), decoder.name
		}
	}
	return "", ""
}

// decodeWithMark decodes raw using the encoding announced by its byte-order mark.
// The mark itself is not part of the returned text.
func decodeWithMark(raw []byte) (string, string, bool) {
	for _, candidate := range byteOrderMarks {
		if !bytes.HasPrefix(raw, candidate.mark) {
			continue
		}
		body := raw[len(candidate.mark):]
		if candidate.encoding == nil {
			text, ok := decodeUTF8(body)
			return text, candidate.name, ok
		}
		text, ok := strictDecoder(candidate.encoding)(body)
		return text, candidate.name, ok
	}
	return "", "", false
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

func decodeUTF8WithOptionalMark(raw []byte) (string, bool) {
	return decodeUTF8(bytes.TrimPrefix(raw, utf8Mark))
}

// strictDecoder wraps an x/text encoding so that lossy decodes are rejected.
// x/text substitutes U+FFFD for malformed input instead of failing, so a
// decode containing U+FFFD is accepted only when re-encoding reproduces raw.
func strictDecoder(textEncoding encoding.Encoding) func([]byte) (string, bool) {
	return func(raw []byte) (string, bool) {
		decoded, decodeError := textEncoding.NewDecoder().Bytes(raw)
		if decodeError != nil {
			return "", false
		}
		if !bytes.ContainsRune(decoded, utf8.RuneError) {
			return string(decoded), true
		}
		encoded, encodeError := textEncoding.NewEncoder().Bytes(decoded)
		if encodeError != nil || !bytes.Equal(encoded, raw) {
			return "", false
		}
		return string(decoded), true
	}
}

// normalizeNewlines applies universal newline translation.
func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

package collect

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Decoder converts raw file bytes into text.
type Decoder struct {
	Name   string
	Decode func(data []byte) (string, bool)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DefaultDecoders is the order in which encodings are tried.
var DefaultDecoders = []Decoder{
	{Name: "utf-8", Decode: decodeUTF8},
	{Name: "gbk", Decode: transcoder(simplifiedchinese.GBK)},
	{Name: "utf-16", Decode: transcoder(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))},
	{Name: "latin-1", Decode: transcoder(charmap.ISO8859_1)},
}

func decodeUTF8(data []byte) (string, bool) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// transcoder wraps an x/text encoding. The x/text decoders substitute U+FFFD for invalid
// input instead of failing, so a replacement character in the output counts as failure.
func transcoder(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}
}

// ReadContent reads a file and decodes it with DefaultDecoders. It returns the text and
// the name of the encoding that succeeded.
func ReadContent(path string) (string, string, error) {
	return readContent(path, DefaultDecoders)
}

func readContent(path string, decoders []Decoder) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", "", &FileAccessError{Path: path, Err: err}
	}

	content, name, ok := decodeContent(data, decoders)
	if !ok {
		tried := make([]string, 0, len(decoders))
		for _, d := range decoders {
			tried = append(tried, d.Name)
		}
		return "", "", &EncodingError{Path: path, Tried: tried}
	}
	return content, name, nil
}

func decodeContent(data []byte, decoders []Decoder) (string, string, bool) {
	for _, d := range decoders {
		if content, ok := d.Decode(data); ok {
			return content, d.Name, true
		}
	}
	return "", "", false
}

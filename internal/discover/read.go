package discover

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// ReadText reads a file as text. Valid UTF-8 is returned as is; anything else
// is decoded as ISO-8859-1, which maps every byte, so decoding never fails.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "reading source")
	}
	return DecodeText(data), nil
}

// DecodeText converts raw file bytes to a string, see ReadText.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}

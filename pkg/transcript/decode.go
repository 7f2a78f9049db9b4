package transcript

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Decode converts raw file bytes to text. Valid UTF-8 is used as is; anything
// else is assumed to be Windows-1252, which is what browsers on Windows tend
// to produce for legacy downloads. Line endings are normalised to "\n".
func Decode(data []byte) string {
	var text string
	if utf8.Valid(data) {
		text = string(data)
	} else if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		text = string(decoded)
	} else {
		text = strings.ToValidUTF8(string(data), "�")
	}
	return newlineNormalizer.Replace(text)
}

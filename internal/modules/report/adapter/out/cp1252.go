package out

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// The PDF core fonts use WinAnsiEncoding, which is cp1252.

func encodeCP1252(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

func decodeCP1252(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		b.WriteRune(charmap.Windows1252.DecodeByte(raw[i]))
	}
	return b.String()
}

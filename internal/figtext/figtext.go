// Package figtext converts between Fig file strings and Go strings.
//
// Fig strings are ISO-8859-1. Bytes outside printable ASCII are written as
// three-digit octal escapes (\ooo), a literal backslash as \\, and the
// string may carry a trailing \001 terminator.
package figtext

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ErrBadEscape is returned for a backslash that starts neither \\ nor a
// three-digit octal escape.
var ErrBadEscape = errors.New("figtext: malformed escape")

const terminator = 0o001

// Decode unescapes a Fig string and converts it from ISO-8859-1 to UTF-8.
func Decode(s string) (string, error) {
	raw := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			raw = append(raw, c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '\\' {
			raw = append(raw, '\\')
			i++
			continue
		}
		if !octal(s[i+1:]) {
			return "", fmt.Errorf("%w at offset %d", ErrBadEscape, i)
		}
		v := (int(s[i+1]-'0') << 6) | (int(s[i+2]-'0') << 3) | int(s[i+3]-'0')
		if v > 0xff {
			return "", fmt.Errorf("%w at offset %d", ErrBadEscape, i)
		}
		raw = append(raw, byte(v))
		i += 3
	}
	if n := len(raw); n > 0 && raw[n-1] == terminator {
		raw = raw[:n-1]
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("figtext: decode: %w", err)
	}
	return string(out), nil
}

// Encode converts s to ISO-8859-1 and escapes it for a Fig file.
// Runes outside Latin-1 are rejected.
func Encode(s string) (string, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("figtext: encode: %w", err)
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func octal(s string) bool {
	if len(s) < 3 {
		return false
	}
	for i := range 3 {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

package pixpaint

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidColorFormat is returned when a hex color cannot be parsed.
var ErrInvalidColorFormat = errors.New("invalid color format")

// ParseHex parses a #RRGGBB or RRGGBB hex triplet (case insensitive) into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	var rgb [3]uint8
	for i := range rgb {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		rgb[i] = hi<<4 | lo
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}

// Hex formats the color channels as a lower case #rrggbb triplet. Alpha is ignored.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

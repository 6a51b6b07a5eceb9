package pixpaint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_ParseHex(t *testing.T) {
	testCases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", red},
		{"FF0000", red},
		{"#0000Ff", blue},
		{"000000", black},
		{"#1a2B3c", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseHex(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestColor_ParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#fff", "ff00000", "#gg0000", "12 456", "##ff0000"} {
		_, err := ParseHex(in)
		assert.ErrorIs(t, err, ErrInvalidColorFormat, "input %q", in)
	}
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#1a2b3c", Hex(color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}))
}

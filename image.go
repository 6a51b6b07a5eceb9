package pixpaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/pixpaint/imop"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when an image cannot be encoded in the requested format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SupportedExtensions lists the file extensions the encoder understands.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// DecodeImage decodes an image stream into a new buffer.
// The EXIF orientation of JPEG sources is applied.
func DecodeImage(r io.Reader) (*Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return NewBufferFromImage(img), nil
}

// EncodeImage writes img to w in the format matching the ext file extension.
// An empty extension defaults to PNG. Formats without an alpha channel
// get the transparent pixels flattened over bg.
func EncodeImage(w io.Writer, img *image.NRGBA, ext string, bg color.NRGBA) error {
	switch strings.ToLower(ext) {
	case "", ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, imop.Flatten(img, bg), &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".gif":
		return gif.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// IsSupportedFile reports whether the file name has one of the SupportedExtensions.
func IsSupportedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Package export renders buffer snapshots into document formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes img as a single page PDF document whose page matches the image size,
// one point per pixel. The image is embedded losslessly as PNG.
func PDF(w io.Writer, img image.Image, title string) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("cannot export an empty image")
	}

	var data bytes.Buffer
	if err := png.Encode(&data, img); err != nil {
		return fmt.Errorf("could not encode the page image: %w", err)
	}

	width, height := float64(b.Dx()), float64(b.Dy())
	// gofpdf expects a portrait page size and swaps it for landscape pages.
	orientation := "P"
	size := gofpdf.SizeType{Wd: width, Ht: height}
	if width > height {
		orientation = "L"
		size = gofpdf.SizeType{Wd: height, Ht: width}
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           size,
	})
	doc.SetTitle(title, true)
	doc.SetCreator("pixpaint", true)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("canvas", opts, &data)
	doc.ImageOptions("canvas", 0, 0, width, height, false, opts, 0, "")

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("could not write the pdf document: %w", err)
	}
	return nil
}

package pixpaint

import (
	"image"
	"testing"
)

func BenchmarkFill_FullCanvas(b *testing.B) {
	buf := NewBuffer(512, 512, white)
	f := NewFiller(512, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fill := red
		if i%2 == 1 {
			fill = white
		}
		if _, err := f.Fill(buf, image.Pt(256, 256), fill); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFill_SinglePixel(b *testing.B) {
	buf := NewBuffer(512, 512, white)
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			if (x+y)%2 == 0 {
				buf.Set(image.Pt(x, y), black)
			}
		}
	}
	f := NewFiller(512, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fill := red
		if i%2 == 1 {
			fill = black
		}
		if _, err := f.Fill(buf, image.Pt(0, 0), fill); err != nil {
			b.Fatal(err)
		}
	}
}

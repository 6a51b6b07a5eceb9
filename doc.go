/*
Package pixpaint implements the raster core of a painting surface: a bounds checked pixel buffer,
freehand stroke tools (pencil and eraser) and a bucket tool backed by a queue based flood fill.

Input events are fed to a Session which maps device coordinates to buffer coordinates,
dispatches them to the active tool and reports every completed operation through its OnCommit hook,
so that the caller can snapshot or persist the buffer.

The package also provides a command line interface which replays a recorded event script over an image:

	$ pixpaint --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"image/color"

		"github.com/esimov/pixpaint"
	)

	func main() {
		white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		buf := pixpaint.NewBuffer(640, 480, white)

		s := pixpaint.NewSession(buf, white)
		s.OnCommit = func(c pixpaint.Commit) {
			// persist buf.Snapshot()
		}
		s.SetTool(pixpaint.Bucket)
		if err := s.SetColorHex("#ff0000"); err != nil {
			// handle error
		}
		s.Press(10, 10)
		s.Release()
	}
*/
package pixpaint

package faces

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

const (
	boxLineWidth = 3
	labelOffset  = 10 // pixels above the box's top edge
)

// Annotate returns a copy of the image with a green rectangle drawn
// around every box and a "FACE n" label (1-based) above it. The source
// image is left untouched.
func Annotate(img image.Image, boxes []BoundingBox) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetRGB255(0, 255, 0)
	dc.SetLineWidth(boxLineWidth)
	for i, box := range boxes {
		dc.DrawRectangle(float64(box.X), float64(box.Y), float64(box.Width), float64(box.Height))
		dc.Stroke()
		dc.DrawString(fmt.Sprintf("FACE %d", i+1), float64(box.X), float64(box.Y-labelOffset))
	}
	return dc.Image()
}

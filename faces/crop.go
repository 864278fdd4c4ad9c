package faces

import (
	"image"

	pigo "github.com/esimov/pigo/core"
)

// CropPadding is the fraction of min(width, height) added around each
// face before cropping.
const CropPadding = 0.2

// Crop cuts the padded face region out of the image. The returned
// coordinates are clamped to the image bounds and always contain the
// original box.
func Crop(img image.Image, box BoundingBox) (image.Image, CropCoordinates) {
	src := pigo.ImgToNRGBA(img)
	b := src.Bounds()

	padding := int(float64(min(box.Width, box.Height)) * CropPadding)
	coords := CropCoordinates{
		XStart: max(0, box.X-padding),
		YStart: max(0, box.Y-padding),
		XEnd:   min(b.Dx(), box.X+box.Width+padding),
		YEnd:   min(b.Dy(), box.Y+box.Height+padding),
	}

	crop := src.SubImage(image.Rect(coords.XStart, coords.YStart, coords.XEnd, coords.YEnd))
	return crop, coords
}

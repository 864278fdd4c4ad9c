package faces

// BoundingBox is an axis-aligned face rectangle in source-image pixel
// coordinates.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CropCoordinates are the padded, clamped bounds of a face crop within
// the source image.
type CropCoordinates struct {
	XStart int `json:"x_start"`
	YStart int `json:"y_start"`
	XEnd   int `json:"x_end"`
	YEnd   int `json:"y_end"`
}

// Area returns the box area in pixels.
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// clip cuts the box down to the given image dimensions.
func (b BoundingBox) clip(width, height int) BoundingBox {
	if b.X < 0 {
		b.Width += b.X
		b.X = 0
	}
	if b.Y < 0 {
		b.Height += b.Y
		b.Y = 0
	}
	if b.X+b.Width > width {
		b.Width = width - b.X
	}
	if b.Y+b.Height > height {
		b.Height = height - b.Y
	}
	return b
}

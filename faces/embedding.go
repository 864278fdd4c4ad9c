package faces

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/floats"
)

// ModelName identifies the feature scheme returned by Embedding. The
// histogram features are a stand-in until a trained model replaces them;
// the name is part of the API and must not change until that happens.
const ModelName = "OpenCV-Features-128D"

const (
	// EmbeddingSize is the fixed output vector length.
	EmbeddingSize = 128

	canvasSize       = 64
	intensityBuckets = 32
	textureBuckets   = 16

	minConfidence = 0.3
	maxConfidence = 0.95
)

// Embedding summarizes a grayscale face image as a fixed-length feature
// vector plus a confidence score derived from how much of the frame the
// detected face covers.
//
// The vector packs a 32-bucket intensity histogram and a 16-bucket
// simplified local-binary-pattern histogram, zero-padded to 128 values
// and L2-normalized.
func Embedding(gray *image.Gray, box BoundingBox) ([]float64, float64) {
	canvas := grayCanvas(gray)
	vec := make([]float64, EmbeddingSize)

	// Intensity histogram over [0, 256), 8 intensities per bucket.
	for y := 0; y < canvasSize; y++ {
		for x := 0; x < canvasSize; x++ {
			vec[int(canvas.GrayAt(x, y).Y)/8]++
		}
	}

	// Simplified LBP over the 62x62 interior: four neighbors (NW, N, NE,
	// E) contribute bits 1, 2, 4, 8 when brighter than the center.
	for y := 1; y < canvasSize-1; y++ {
		for x := 1; x < canvasSize-1; x++ {
			center := canvas.GrayAt(x, y).Y
			pattern := 0
			if canvas.GrayAt(x-1, y-1).Y > center {
				pattern += 1
			}
			if canvas.GrayAt(x, y-1).Y > center {
				pattern += 2
			}
			if canvas.GrayAt(x+1, y-1).Y > center {
				pattern += 4
			}
			if canvas.GrayAt(x+1, y).Y > center {
				pattern += 8
			}
			vec[intensityBuckets+pattern%textureBuckets]++
		}
	}
	// The remaining 80 slots stay zero: the scheme pads to 128 on purpose.

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec, Confidence(box, gray.Rect.Dx(), gray.Rect.Dy())
}

// Confidence is a size heuristic, not a trained quality estimate: faces
// filling more of the frame score higher, clamped to [0.3, 0.95].
func Confidence(box BoundingBox, imgWidth, imgHeight int) float64 {
	if imgWidth <= 0 || imgHeight <= 0 {
		return minConfidence
	}
	ratio := float64(box.Area()) / float64(imgWidth*imgHeight)
	return clamp(ratio*2.0, minConfidence, maxConfidence)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// grayCanvas resizes the image to the fixed 64x64 feature canvas.
// Interpolation is bilinear; changing it changes the histograms.
func grayCanvas(gray *image.Gray) *image.Gray {
	resized := resize.Resize(canvasSize, canvasSize, gray, resize.Bilinear)
	if g, ok := resized.(*image.Gray); ok {
		return g
	}
	out := image.NewGray(image.Rect(0, 0, canvasSize, canvasSize))
	draw.Draw(out, out.Bounds(), resized, resized.Bounds().Min, draw.Src)
	return out
}

package faces

import (
	"errors"
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
	log "github.com/sirupsen/logrus"
)

// Tuning mirrors the OpenCV detectMultiScale parameters the service has
// always shipped with: scale step 1.1, minimum face size 30x30. The
// minNeighbors=5 corroboration threshold maps onto pigo's cluster score,
// see minQuality below.
const (
	scaleFactor = 1.1
	shiftFactor = 0.1
	minFaceSize = 30

	// IoU threshold for merging overlapping candidate windows.
	clusterThreshold = 0.2

	// Minimum quality score a clustered detection must reach to be kept.
	// This suppresses single uncorroborated windows the same way a
	// minimum-neighbor count of 5 does.
	minQuality float32 = 5.0
)

var classifier *pigo.Pigo

// Init unpacks the binary cascade model into the package-wide classifier.
// Must be called once at startup; the classifier is read-only afterwards
// and safe for concurrent use.
func Init(cascadeFile string) error {
	data, err := os.ReadFile(cascadeFile)
	if err != nil {
		return fmt.Errorf("reading cascade file: %w", err)
	}
	classifier, err = pigo.NewPigo().Unpack(data)
	if err != nil {
		return fmt.Errorf("unpacking cascade file: %w", err)
	}
	log.Infof("Loaded face cascade from %s", cascadeFile)
	return nil
}

// Detect locates faces in the image and returns their bounding boxes,
// clipped to the image bounds. Box order is whatever the classifier
// produces and carries no meaning.
func Detect(img image.Image) ([]BoundingBox, error) {
	if classifier == nil {
		return nil, errors.New("face detector not initialized")
	}
	src := pigo.ImgToNRGBA(img)
	pixels := pigo.RgbToGrayscale(src)
	cols, rows := src.Bounds().Max.X, src.Bounds().Max.Y

	params := pigo.CascadeParams{
		MinSize:     minFaceSize,
		MaxSize:     max(cols, rows),
		ShiftFactor: shiftFactor,
		ScaleFactor: scaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := classifier.RunCascade(params, 0)
	dets = classifier.ClusterDetections(dets, clusterThreshold)

	boxes := make([]BoundingBox, 0, len(dets))
	for _, det := range dets {
		if det.Q < minQuality {
			continue
		}
		box := BoundingBox{
			X:      det.Col - det.Scale/2,
			Y:      det.Row - det.Scale/2,
			Width:  det.Scale,
			Height: det.Scale,
		}
		box = box.clip(cols, rows)
		if box.Width <= 0 || box.Height <= 0 {
			continue
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

// Grayscale converts the image to a single-channel intensity image using
// the same luminance weights the detector applies internally.
func Grayscale(img image.Image) *image.Gray {
	src := pigo.ImgToNRGBA(img)
	b := src.Bounds()
	return &image.Gray{
		Pix:    pigo.RgbToGrayscale(src),
		Stride: b.Dx(),
		Rect:   image.Rect(0, 0, b.Dx(), b.Dy()),
	}
}

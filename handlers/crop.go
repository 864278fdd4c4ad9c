package handlers

import (
	"net/http"

	"faceservice/config"
	"faceservice/faces"
	"faceservice/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type FaceCrop struct {
	FaceID          int                   `json:"face_id"`
	BoundingBox     faces.BoundingBox     `json:"bounding_box"`
	CropCoordinates faces.CropCoordinates `json:"crop_coordinates"`
	FaceCropBase64  string                `json:"face_crop_base64"`
}

type CropResponse struct {
	FacesDetected int        `json:"faces_detected"`
	HasFaces      bool       `json:"has_faces"`
	FaceCrops     []FaceCrop `json:"face_crops"`
}

// CropFaces returns each detected face as a separate JPEG, cut out of
// the posted image with padding around it.
func CropFaces(c *gin.Context) {
	img, ok := parseImage(c)
	if !ok {
		return
	}
	boxes, err := locateFaces(img)
	if err != nil {
		abortProcessing(c, err)
		return
	}
	crops := make([]FaceCrop, 0, len(boxes))
	for i, box := range boxes {
		crop, coords := faces.Crop(img, box)
		encoded, err := utils.EncodeJPEGBase64(crop, config.JPEG_QUALITY)
		if err != nil {
			abortProcessing(c, err)
			return
		}
		crops = append(crops, FaceCrop{
			FaceID:          i + 1,
			BoundingBox:     box,
			CropCoordinates: coords,
			FaceCropBase64:  encoded,
		})
	}
	log.Infof("Extracted %d face crop(s)", len(crops))
	c.JSON(http.StatusOK, CropResponse{
		FacesDetected: len(boxes),
		HasFaces:      len(boxes) > 0,
		FaceCrops:     crops,
	})
}

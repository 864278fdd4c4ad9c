package handlers

import (
	"net/http"

	"faceservice/config"
	"faceservice/faces"
	"faceservice/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ProcessResponse struct {
	FacesDetected  int    `json:"faces_detected"`
	HasFaces       bool   `json:"has_faces"`
	ProcessedImage string `json:"processed_image"`
}

// ProcessFaces returns a JPEG copy of the posted image with every face
// boxed and labelled.
func ProcessFaces(c *gin.Context) {
	img, ok := parseImage(c)
	if !ok {
		return
	}
	boxes, err := locateFaces(img)
	if err != nil {
		abortProcessing(c, err)
		return
	}
	annotated := faces.Annotate(img, boxes)
	encoded, err := utils.EncodeJPEGBase64(annotated, config.JPEG_QUALITY)
	if err != nil {
		abortProcessing(c, err)
		return
	}
	log.Infof("Processed image with %d face(s)", len(boxes))
	c.JSON(http.StatusOK, ProcessResponse{
		FacesDetected:  len(boxes),
		HasFaces:       len(boxes) > 0,
		ProcessedImage: encoded,
	})
}

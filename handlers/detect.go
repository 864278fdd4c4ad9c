package handlers

import (
	"net/http"

	"faceservice/faces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type DetectResponse struct {
	FacesDetected int                 `json:"faces_detected"`
	Faces         []faces.BoundingBox `json:"faces"`
	HasFaces      bool                `json:"has_faces"`
}

// DetectFaces returns the bounding box of every face found in the
// posted image.
func DetectFaces(c *gin.Context) {
	img, ok := parseImage(c)
	if !ok {
		return
	}
	boxes, err := locateFaces(img)
	if err != nil {
		abortProcessing(c, err)
		return
	}
	log.Infof("Detected %d face(s)", len(boxes))
	c.JSON(http.StatusOK, DetectResponse{
		FacesDetected: len(boxes),
		Faces:         boxes,
		HasFaces:      len(boxes) > 0,
	})
}

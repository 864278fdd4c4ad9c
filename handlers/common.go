package handlers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"faceservice/faces"
	"faceservice/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ImageRequest is the body accepted by all detection endpoints.
type ImageRequest struct {
	Image *string `json:"image"`
}

// locateFaces is a package variable so tests can substitute a stub; the
// cascade model is runtime data, not a test fixture.
var locateFaces = faces.Detect

// parseImage decodes the request body and its base64 image payload. On
// failure the error response is already written and ok is false.
func parseImage(c *gin.Context) (img image.Image, ok bool) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortProcessing(c, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}
	if req.Image == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(*req.Image)
	if err != nil {
		abortProcessing(c, fmt.Errorf("invalid base64 image data: %w", err))
		return nil, false
	}
	img, _, err = image.Decode(bytes.NewReader(data))
	if err != nil {
		abortProcessing(c, fmt.Errorf("cannot decode %s payload as image: %w", mimetype.Detect(data), err))
		return nil, false
	}
	return img, true
}

// abortProcessing converts any processing failure into the uniform 500
// error shape. Nothing propagates past the handler boundary.
func abortProcessing(c *gin.Context, err error) {
	log.WithField(utils.RequestIDKey, c.GetString(utils.RequestIDKey)).Errorf("Processing error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

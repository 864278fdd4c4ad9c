package handlers

import (
	"net/http"

	"faceservice/faces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type EmbeddingResponse struct {
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	Embedding  []float64 `json:"embedding"`
	Confidence float64   `json:"confidence"`
	Model      string    `json:"model,omitempty"`
}

// GenerateEmbedding computes the 128-value feature vector for the first
// face found in the posted image. An image without a face is an expected
// outcome and answers 200 with success=false, not an error status.
func GenerateEmbedding(c *gin.Context) {
	img, ok := parseImage(c)
	if !ok {
		return
	}
	boxes, err := locateFaces(img)
	if err != nil {
		abortProcessing(c, err)
		return
	}
	if len(boxes) == 0 {
		log.Info("No face found, skipping embedding")
		c.JSON(http.StatusOK, EmbeddingResponse{
			Success: false,
			Error:   "No face detected in crop",
		})
		return
	}
	embedding, confidence := faces.Embedding(faces.Grayscale(img), boxes[0])
	log.Infof("Generated embedding with confidence %.3f", confidence)
	c.JSON(http.StatusOK, EmbeddingResponse{
		Success:    true,
		Embedding:  embedding,
		Confidence: confidence,
		Model:      faces.ModelName,
	})
}

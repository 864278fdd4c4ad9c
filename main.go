package main

import (
	"strings"
	"time"

	"faceservice/config"
	"faceservice/faces"
	"faceservice/handlers"
	"faceservice/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	if config.DEBUG_MODE {
		log.SetLevel(log.DebugLevel)
	}

	// The classifier is loaded once and shared read-only by all request
	// handlers for the lifetime of the process.
	if err := faces.Init(config.CASCADE_FILE); err != nil {
		log.Fatalf("Cannot initialize face detector: %v", err)
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"POST", "GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.RequestIDMiddleware)

	// Face detection endpoints
	router.POST("/detect-faces", handlers.DetectFaces)
	router.POST("/process-faces", handlers.ProcessFaces)
	router.POST("/crop-faces", handlers.CropFaces)
	router.POST("/generate-embedding", handlers.GenerateEmbedding)
	// Misc
	router.GET("/health", handlers.Health)

	log.Infof("Starting face detection service on %s", config.BIND_ADDRESS)
	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

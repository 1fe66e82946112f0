package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "snaptext-backend/internal/auth"
	"snaptext-backend/internal/documents"
	"snaptext-backend/internal/extract"
	"snaptext-backend/internal/ocr"
	"snaptext-backend/internal/shared/config"
	"snaptext-backend/internal/shared/metrics"
	"snaptext-backend/internal/shared/server/middleware"
	"snaptext-backend/internal/shared/server/respond"
)

const ocrRateGroup = "OCR"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	DocumentHandler *documents.Handler
	OCRHandler      *ocr.Handler
	ExtractHandler  *extract.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				ocrRateGroup: {Rate: 0.5, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/ocr") {
					return ocrRateGroup
				}
				return ""
			},
		}),
	)

	root := r.Group("/")
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	root.GET("/metrics", metrics.Handler())
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(root)
	}
	registerMeRoutes(root)
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(root)
	}
	if deps.OCRHandler != nil {
		deps.OCRHandler.RegisterRoutes(root)
	}
	if deps.ExtractHandler != nil {
		deps.ExtractHandler.RegisterRoutes(root)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsletter-form/pkg/middleware"
)

// NewRouter registers every route of the newsletter service
func NewRouter(h *Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())

	router.SetHTMLTemplate(PageTemplate)

	router.GET("/", h.NewsletterPage)
	router.POST("/newsletter", h.HandleNewsletterForm)
	router.POST("/api/newsletter/subscribe", h.HandleSubscribe)
	router.GET("/health", h.HealthCheck)

	return router
}

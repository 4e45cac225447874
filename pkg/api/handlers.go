package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsletter-form/pkg/clients/cyberknight"
	"newsletter-form/pkg/models"
	"newsletter-form/pkg/page"
	"newsletter-form/pkg/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate renders the newsletter widget page
var PageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	client        cyberknight.Client
	controller    *services.SubscriptionFormController
	councilNumber string
	log           *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	client cyberknight.Client,
	controller *services.SubscriptionFormController,
	councilNumber string,
	log *zap.Logger,
) *Handlers {
	return &Handlers{
		client:        client,
		controller:    controller,
		councilNumber: councilNumber,
		log:           log,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type pageView struct {
	Fields         models.SubscriptionRequest
	ButtonText     string
	ButtonDisabled bool
	Feedback       page.ElementState
	AutoHideMs     int64
}

// NewsletterPage renders the empty form
func (h *Handlers) NewsletterPage(c *gin.Context) {
	doc := page.NewNewsletterDocument(h.councilNumber, models.SubscriptionRequest{})
	h.renderDocument(c, doc)
}

// HandleNewsletterForm processes a plain form post through the form controller
// and renders the page as the controller left it.
func (h *Handlers) HandleNewsletterForm(c *gin.Context) {
	fields := models.SubscriptionRequest{
		Email:   c.PostForm("email"),
		Name:    c.PostForm("name"),
		Phone:   c.PostForm("phone"),
		IsHuman: c.PostForm("is_human") != "",
	}

	doc := page.NewNewsletterDocument(h.councilNumber, fields)
	h.controller.Bind(doc)

	form, _ := doc.MemoryForm(page.FormSelector)
	if _, err := doc.Submit(c.Request.Context(), form); err != nil {
		h.log.Error("Error handling newsletter form", zap.Error(err))
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Error processing form")
		return
	}

	h.renderDocument(c, doc)
}

func (h *Handlers) renderDocument(c *gin.Context, doc *page.MemoryDocument) {
	form, _ := doc.MemoryForm(page.FormSelector)
	button, _ := form.MemoryButton(page.SubmitSelector)
	feedback, _ := doc.MemoryElement(page.FeedbackID)

	view := pageView{
		Fields:         form.Values(),
		ButtonText:     button.Text(),
		ButtonDisabled: button.Disabled(),
		Feedback:       feedback.State(),
	}
	if view.Feedback.Visible && view.Feedback.ClassName == page.FeedbackBaseCSS+" "+string(models.FeedbackSuccess) {
		view.AutoHideMs = services.FeedbackHideDelay.Milliseconds()
	}

	c.HTML(http.StatusOK, "newsletter", view)
}

// HandleSubscribe relays a JSON subscription to the newsletter API
func (h *Handlers) HandleSubscribe(c *gin.Context) {
	var req models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid subscription request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	req = req.Trimmed()
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	outcome := h.client.Subscribe(c.Request.Context(), h.councilNumber, req)
	switch outcome.Kind() {
	case models.FeedbackSuccess:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": outcome.Message(),
		})
	default:
		msg := outcome.ErrorText()
		if msg == "" {
			msg = services.UnexpectedErrorMessage
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   msg,
		})
	}
}

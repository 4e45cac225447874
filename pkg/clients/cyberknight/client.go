package cyberknight

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"newsletter-form/pkg/models"
	"newsletter-form/pkg/utils"
)

const (
	DefaultBaseURL = "https://secure.cyberknight-websites.com"

	SuccessMessage       = "Thank you for subscribing! Check your email for confirmation."
	RejectedMessage      = "Subscription failed"
	TransportFailMessage = "Failed to subscribe. Please try again."
)

// Client defines the interface for the CyberKnight public newsletter API
type Client interface {
	// Subscribe posts one subscription request. It never retries and never returns an error:
	// rejections and transport failures come back as failure outcomes.
	Subscribe(ctx context.Context, councilNumber string, req models.SubscriptionRequest) models.SubscriptionOutcome
}

type clientImpl struct {
	http *resty.Client
	log  *zap.Logger
}

// Option customizes the client built by NewClient
type Option func(*resty.Client)

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// NewClient creates a new CyberKnight client rooted at baseURL
func NewClient(baseURL string, log *zap.Logger, opts ...Option) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)
	for _, opt := range opts {
		opt(rc)
	}

	return &clientImpl{
		http: rc,
		log:  log,
	}
}

type subscribePayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsHuman bool   `json:"is_human"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *clientImpl) Subscribe(ctx context.Context, councilNumber string, req models.SubscriptionRequest) models.SubscriptionOutcome {
	payload := subscribePayload{
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		IsHuman: req.IsHuman,
	}

	path := fmt.Sprintf("/public_api/%s/newsletter_subscribe", url.PathEscape(councilNumber))

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		c.log.Warn("Newsletter API request failed",
			zap.String("council", councilNumber),
			zap.Error(err))
		return transportFailure(err)
	}

	raw := resp.Body()

	if !resp.IsSuccess() {
		msg := RejectedMessage
		var body errorResponse
		if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
			msg = body.Error
		}
		c.log.Warn("Newsletter API rejected subscription",
			zap.String("council", councilNumber),
			zap.String("email", req.Email),
			zap.Int("status", resp.StatusCode()),
			zap.String("error", msg))
		return models.Failure(msg)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		c.log.Warn("Newsletter API returned malformed body",
			zap.String("council", councilNumber),
			zap.Int("status", resp.StatusCode()),
			zap.Error(err))
		return transportFailure(fmt.Errorf("error parsing response: %w", err))
	}

	c.log.Info("Subscribed to newsletter",
		zap.String("council", councilNumber),
		zap.String("email", req.Email),
		zap.String("phone_hash", utils.HashString(req.Phone)))
	return models.Success(SuccessMessage)
}

func transportFailure(err error) models.SubscriptionOutcome {
	if err == nil || err.Error() == "" {
		return models.Failure(TransportFailMessage)
	}
	return models.Failure(err.Error())
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"newsletter-form/pkg/clients/cyberknight"
	"newsletter-form/pkg/clients/cyberknight/mocks"
	"newsletter-form/pkg/models"
	"newsletter-form/pkg/services"
)

const council = "1234"

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := &mocks.Client{}
	t.Cleanup(func() { client.AssertExpectations(t) })

	log := zap.NewNop()
	controller := services.NewSubscriptionFormController(client, services.NewFeedbackRenderer(clock.NewMock()), log)
	handlers := NewHandlers(client, controller, council, log)

	return NewRouter(handlers, log), client
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNewsletterPage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="newsletter-subscribe-form"`)
	assert.Contains(t, body, `id="newsletter-feedback" class="newsletter-feedback" style="display: none"`)
	assert.Contains(t, body, `>Subscribe to Newsletter</button>`)
}

func TestHandleNewsletterForm_Success(t *testing.T) {
	r, client := newTestRouter(t)

	client.
		On("Subscribe", mock.Anything, council, models.SubscriptionRequest{
			Email:   "reader@example.com",
			Name:    "Pat",
			IsHuman: true,
		}).
		Return(models.Success(cyberknight.SuccessMessage)).
		Once()

	w := postForm(r, "/newsletter", url.Values{
		"email":    {" reader@example.com "},
		"name":     {"Pat"},
		"phone":    {""},
		"is_human": {"on"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="newsletter-feedback success"`)
	assert.Contains(t, body, cyberknight.SuccessMessage)
	assert.Contains(t, body, `data-autohide-ms="5000"`)
	assert.Contains(t, body, `id="email" name="email" value=""`)
	assert.NotContains(t, body, " checked")
	assert.Contains(t, body, `class="submit-button">Subscribe to Newsletter</button>`)
}

func TestHandleNewsletterForm_Failure(t *testing.T) {
	r, client := newTestRouter(t)

	client.
		On("Subscribe", mock.Anything, council, models.SubscriptionRequest{Email: "reader@example.com"}).
		Return(models.Failure("Email already subscribed")).
		Once()

	w := postForm(r, "/newsletter", url.Values{"email": {"reader@example.com"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="newsletter-feedback error"`)
	assert.Contains(t, body, "Email already subscribed")
	assert.NotContains(t, body, "data-autohide-ms")
	assert.Contains(t, body, `value="reader@example.com"`)
	assert.Contains(t, body, `class="submit-button">Subscribe to Newsletter</button>`)
}

func TestHandleSubscribe(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		on       func(*mocks.Client)
		wantCode int
		wantBody string
	}{
		{
			name: "success",
			body: `{"email":" a@example.com ","is_human":true}`,
			on: func(c *mocks.Client) {
				c.On("Subscribe", mock.Anything, council, models.SubscriptionRequest{Email: "a@example.com", IsHuman: true}).
					Return(models.Success(cyberknight.SuccessMessage)).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"message":"Thank you for subscribing! Check your email for confirmation."}`,
		},
		{
			name: "rejected",
			body: `{"email":"a@example.com"}`,
			on: func(c *mocks.Client) {
				c.On("Subscribe", mock.Anything, council, models.SubscriptionRequest{Email: "a@example.com"}).
					Return(models.Failure(cyberknight.RejectedMessage)).Once()
			},
			wantCode: http.StatusBadGateway,
			wantBody: `{"success":false,"error":"Subscription failed"}`,
		},
		{
			name:     "missing email",
			body:     `{"email":"   ","name":"Pat"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing required fields"}`,
		},
		{
			name:     "invalid json",
			body:     `{"email":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid JSON format"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, client := newTestRouter(t)
			if tt.on != nil {
				tt.on(client)
			}

			w := postJSON(r, "/api/newsletter/subscribe", []byte(tt.body))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())

			var decoded map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		})
	}
}

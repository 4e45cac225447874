package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"newsletter-form/pkg/clients/cyberknight"
	"newsletter-form/pkg/models"
	"newsletter-form/pkg/page"
	"newsletter-form/pkg/utils"
)

// UnexpectedErrorMessage is shown when a failure carries no text of its own
const UnexpectedErrorMessage = "An unexpected error occurred. Please try again."

// ErrMissingElement is returned when the page lacks part of the newsletter widget
var ErrMissingElement = errors.New("newsletter widget element missing")

// SubscriptionFormController wires the newsletter form of a page to the subscription API
type SubscriptionFormController struct {
	client   cyberknight.Client
	feedback *FeedbackRenderer
	log      *zap.Logger
}

// NewSubscriptionFormController creates a new form controller
func NewSubscriptionFormController(
	client cyberknight.Client,
	feedback *FeedbackRenderer,
	log *zap.Logger,
) *SubscriptionFormController {
	if feedback == nil {
		feedback = NewFeedbackRenderer(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SubscriptionFormController{
		client:   client,
		feedback: feedback,
		log:      log,
	}
}

// Bind registers the submit handler on the page's newsletter form.
// A page without the widget is left alone and Bind reports false.
func (c *SubscriptionFormController) Bind(doc page.Document) bool {
	form, ok := doc.QueryForm(page.FormSelector)
	if !ok {
		c.log.Debug("No newsletter form on page")
		return false
	}

	doc.OnSubmit(form, func(ctx context.Context, event page.SubmitEvent) error {
		return c.HandleSubmit(ctx, doc, event)
	})
	return true
}

type widget struct {
	button   page.Button
	feedback page.Element
	email    page.Input
	name     page.Input
	phone    page.Input
	isHuman  page.Checkbox
}

func lookupWidget(doc page.Document, form page.Form) (*widget, error) {
	var w widget
	var ok bool

	if w.button, ok = form.Button(page.SubmitSelector); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, page.SubmitSelector)
	}
	if w.feedback, ok = doc.ElementByID(page.FeedbackID); !ok {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, page.FeedbackID)
	}
	if w.email, ok = form.Input(page.EmailSelector); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, page.EmailSelector)
	}
	if w.name, ok = form.Input(page.NameSelector); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, page.NameSelector)
	}
	if w.phone, ok = form.Input(page.PhoneSelector); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, page.PhoneSelector)
	}
	if w.isHuman, ok = form.Checkbox(page.IsHumanSelector); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, page.IsHumanSelector)
	}
	return &w, nil
}

// HandleSubmit runs one submission: it locks the button, posts the fields once,
// renders the outcome and always restores the button.
// The only error it returns is a missing widget element, in which case the page is not modified.
func (c *SubscriptionFormController) HandleSubmit(ctx context.Context, doc page.Document, event page.SubmitEvent) error {
	event.PreventDefault()

	form := event.Target()
	w, err := lookupWidget(doc, form)
	if err != nil {
		c.log.Error("Newsletter form is incomplete", zap.Error(err))
		return err
	}

	w.button.SetDisabled(true)
	w.button.SetText(page.SubmitBusyLabel)
	defer func() {
		w.button.SetDisabled(false)
		w.button.SetText(page.SubmitIdleLabel)
	}()

	req := models.SubscriptionRequest{
		Email:   w.email.Value(),
		Name:    w.name.Value(),
		Phone:   w.phone.Value(),
		IsHuman: w.isHuman.Checked(),
	}.Trimmed()

	council := doc.CouncilNumber()
	c.log.Info("Processing newsletter subscription",
		zap.String("council", council),
		zap.String("email", req.Email),
		zap.String("phone_hash", utils.HashString(req.Phone)))

	outcome := c.subscribe(ctx, council, req)

	switch outcome.Kind() {
	case models.FeedbackSuccess:
		c.feedback.Show(w.feedback, models.FeedbackSuccess, outcome.Message())
		form.Reset()
	case models.FeedbackError:
		msg := outcome.ErrorText()
		if msg == "" {
			msg = UnexpectedErrorMessage
		}
		c.feedback.Show(w.feedback, models.FeedbackError, msg)
	default:
		c.feedback.Show(w.feedback, models.FeedbackError, UnexpectedErrorMessage)
	}

	return nil
}

// subscribe calls the client and turns a panic into an empty failure
func (c *SubscriptionFormController) subscribe(ctx context.Context, council string, req models.SubscriptionRequest) (outcome models.SubscriptionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Newsletter client panicked", zap.Any("panic", r))
			outcome = models.Failure("")
		}
	}()
	return c.client.Subscribe(ctx, council, req)
}

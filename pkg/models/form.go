package models

import "strings"

// SubscriptionRequest is the payload sent to the newsletter API
type SubscriptionRequest struct {
	Email   string `json:"email" form:"email"`
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	IsHuman bool   `json:"is_human" form:"is_human"`
}

// Trimmed returns a copy with leading and trailing whitespace removed
func (r SubscriptionRequest) Trimmed() SubscriptionRequest {
	return SubscriptionRequest{
		Email:   strings.TrimSpace(r.Email),
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		IsHuman: r.IsHuman,
	}
}

// FeedbackKind selects the styling of the feedback container
type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// SubscriptionOutcome is either a success carrying a message or a failure carrying an error text.
// Use Success or Failure to build one.
type SubscriptionOutcome struct {
	kind    FeedbackKind
	message string
}

func Success(message string) SubscriptionOutcome {
	return SubscriptionOutcome{kind: FeedbackSuccess, message: message}
}

func Failure(errText string) SubscriptionOutcome {
	return SubscriptionOutcome{kind: FeedbackError, message: errText}
}

// Kind reports which variant the outcome holds
func (o SubscriptionOutcome) Kind() FeedbackKind {
	return o.kind
}

func (o SubscriptionOutcome) IsSuccess() bool {
	return o.kind == FeedbackSuccess
}

// Message is the success text; empty for failures
func (o SubscriptionOutcome) Message() string {
	if o.kind != FeedbackSuccess {
		return ""
	}
	return o.message
}

// ErrorText is the failure text; empty for successes
func (o SubscriptionOutcome) ErrorText() string {
	if o.kind != FeedbackError {
		return ""
	}
	return o.message
}

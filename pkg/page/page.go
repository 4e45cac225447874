// Package page describes the page structure the newsletter widget depends on.
//
// The controller never touches markup directly: it is handed a Document that can
// look up the form and its controls, so the same logic runs against a rendered
// HTML page or an in-memory model in tests.
package page

import "context"

// Selectors and ids of the newsletter widget markup
const (
	FormSelector    = ".newsletter-subscribe-form"
	EmailSelector   = "#email"
	NameSelector    = "#name"
	PhoneSelector   = "#phone"
	IsHumanSelector = "#is_human"
	SubmitSelector  = ".submit-button"
	FeedbackID      = "newsletter-feedback"
	FeedbackBaseCSS = "newsletter-feedback"
	SubmitIdleLabel = "Subscribe to Newsletter"
	SubmitBusyLabel = "Subscribing..."
)

// Document is the page a form controller is bound to
type Document interface {
	QueryForm(selector string) (Form, bool)
	ElementByID(id string) (Element, bool)
	// CouncilNumber identifies the council whose newsletter the page subscribes to
	CouncilNumber() string
	OnSubmit(form Form, handler SubmitHandler)
}

type Form interface {
	Input(selector string) (Input, bool)
	Checkbox(selector string) (Checkbox, bool)
	Button(selector string) (Button, bool)
	// Reset clears every field back to its default state
	Reset()
}

type Input interface {
	Value() string
}

type Checkbox interface {
	Checked() bool
}

type Button interface {
	SetDisabled(disabled bool)
	SetText(text string)
}

// Element is a plain display element such as the feedback container
type Element interface {
	SetClassName(className string)
	SetText(text string)
	SetVisible(visible bool)
}

// SubmitEvent is raised when a form is submitted
type SubmitEvent interface {
	Target() Form
	PreventDefault()
}

type SubmitHandler func(ctx context.Context, event SubmitEvent) error

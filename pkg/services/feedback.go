package services

import (
	"time"

	"github.com/benbjohnson/clock"

	"newsletter-form/pkg/models"
	"newsletter-form/pkg/page"
)

// FeedbackHideDelay is how long a success message stays visible
const FeedbackHideDelay = 5 * time.Second

// FeedbackRenderer writes outcome messages into the feedback container
type FeedbackRenderer struct {
	clock clock.Clock
}

// NewFeedbackRenderer creates a renderer driven by clk. A nil clock uses wall time.
func NewFeedbackRenderer(clk clock.Clock) *FeedbackRenderer {
	if clk == nil {
		clk = clock.New()
	}
	return &FeedbackRenderer{clock: clk}
}

// Show styles el for kind, sets its text and makes it visible.
// Success messages are hidden again after FeedbackHideDelay; the text is left in place.
// Pending hides are never cancelled, a later render may be hidden by an earlier timer.
func (r *FeedbackRenderer) Show(el page.Element, kind models.FeedbackKind, message string) {
	el.SetClassName(page.FeedbackBaseCSS + " " + string(kind))
	el.SetText(message)
	el.SetVisible(true)

	if kind == models.FeedbackSuccess {
		r.clock.AfterFunc(FeedbackHideDelay, func() {
			el.SetVisible(false)
		})
	}
}

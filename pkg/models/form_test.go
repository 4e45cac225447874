package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRequest_Trimmed(t *testing.T) {
	req := SubscriptionRequest{Email: " \ta@example.com\n", Name: "  ", Phone: " 555 ", IsHuman: true}

	assert.Equal(t, SubscriptionRequest{Email: "a@example.com", Phone: "555", IsHuman: true}, req.Trimmed())
}

func TestSubscriptionRequest_WireNames(t *testing.T) {
	raw, err := json.Marshal(SubscriptionRequest{Email: "a@example.com"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"email":"a@example.com","name":"","phone":"","is_human":false}`, string(raw))
}

func TestSubscriptionOutcome(t *testing.T) {
	ok := Success("thanks")
	assert.Equal(t, FeedbackSuccess, ok.Kind())
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "thanks", ok.Message())
	assert.Empty(t, ok.ErrorText())

	failed := Failure("nope")
	assert.Equal(t, FeedbackError, failed.Kind())
	assert.False(t, failed.IsSuccess())
	assert.Equal(t, "nope", failed.ErrorText())
	assert.Empty(t, failed.Message())

	var zero SubscriptionOutcome
	assert.False(t, zero.IsSuccess())
	assert.Empty(t, zero.Kind())
}

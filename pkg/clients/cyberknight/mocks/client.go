package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsletter-form/pkg/models"
)

type Client struct {
	mock.Mock
}

func (m *Client) Subscribe(ctx context.Context, councilNumber string, req models.SubscriptionRequest) models.SubscriptionOutcome {
	args := m.Called(ctx, councilNumber, req)
	return args.Get(0).(models.SubscriptionOutcome)
}

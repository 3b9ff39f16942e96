package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	natsclient "github.com/vicholitvak/moai-logistics/internal/pkg/nats"
	"github.com/vicholitvak/moai-logistics/services/tracking"
)

type trackingGW struct {
	client *natsclient.Client
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(client *natsclient.Client) tracking.TrackingGW {
	return &trackingGW{
		client: client,
	}
}

// PublishETAUpdate republishes a live ETA for an in-flight order
func (g *trackingGW) PublishETAUpdate(ctx context.Context, event *models.OrderETAUpdatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal eta update event: %w", err)
	}

	return g.client.Publish(constants.SubjectOrderETAUpdated, data)
}

package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	natsclient "github.com/vicholitvak/moai-logistics/internal/pkg/nats"

	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/services/drivers"
)

type driverGW struct {
	client *natsclient.Client
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(client *natsclient.Client) drivers.DriverGW {
	return &driverGW{
		client: client,
	}
}

// PublishOrderPosition forwards a driver position sample onto the order
// the driver is currently delivering
func (g *driverGW) PublishOrderPosition(ctx context.Context, event *models.OrderPositionUpdatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order position event: %w", err)
	}

	return g.client.Publish(constants.SubjectOrderPosition, data)
}

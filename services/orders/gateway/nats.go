package gateway

import (
	"context"

	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	natsclient "github.com/vicholitvak/moai-logistics/internal/pkg/nats"
	"github.com/vicholitvak/moai-logistics/services/orders"
)

type orderGW struct {
	client *natsclient.Client
}

// NewOrderGW creates a new order gateway
func NewOrderGW(client *natsclient.Client) orders.OrderGW {
	return &orderGW{
		client: client,
	}
}

// PublishStatusChanged notifies collaborators of an applied transition
func (g *orderGW) PublishStatusChanged(ctx context.Context, event *models.OrderStatusChangedEvent) error {
	return g.client.PublishJSON(constants.SubjectOrderStatusChanged, event)
}

// PublishAssignmentRequested asks the dispatch planner to find a driver
func (g *orderGW) PublishAssignmentRequested(ctx context.Context, event *models.AssignmentRequestedEvent) error {
	return g.client.PublishJSON(constants.SubjectAssignmentRequested, event)
}

// PublishDriverRelease asks the driver directory to return a driver to
// the available pool
func (g *orderGW) PublishDriverRelease(ctx context.Context, event *models.DriverReleaseRequestedEvent) error {
	return g.client.PublishJSON(constants.SubjectDriverRelease, event)
}

// PublishLoyaltyAccrual asks the loyalty collaborator to credit the
// customer for a delivered order
func (g *orderGW) PublishLoyaltyAccrual(ctx context.Context, event *models.LoyaltyAccrualRequestedEvent) error {
	return g.client.PublishJSON(constants.SubjectLoyaltyAccrual, event)
}

package gateway

import (
	"context"

	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	natsclient "github.com/vicholitvak/moai-logistics/internal/pkg/nats"
	"github.com/vicholitvak/moai-logistics/services/dispatch"
)

type dispatchGW struct {
	client *natsclient.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(client *natsclient.Client) dispatch.DispatchGW {
	return &dispatchGW{
		client: client,
	}
}

// PublishOperatorAlert escalates an order that cannot be planned
func (g *dispatchGW) PublishOperatorAlert(ctx context.Context, event *models.OperatorAlertEvent) error {
	return g.client.PublishJSON(constants.SubjectOperatorAlert, event)
}

package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	natspkg "github.com/vicholitvak/moai-logistics/internal/pkg/nats"
	nrpkg "github.com/vicholitvak/moai-logistics/internal/pkg/newrelic"
)

const releaseQueueGroup = "drivers-release"

// InitNATSConsumers subscribes the driver directory to release requests
// emitted by the order state machine
func (h *Handler) InitNATSConsumers(client *natspkg.Client) error {
	sub, err := client.QueueSubscribe(constants.SubjectDriverRelease, releaseQueueGroup, h.handleDriverRelease)
	if err != nil {
		return fmt.Errorf("failed to subscribe to driver release requests: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

func (h *Handler) handleDriverRelease(ctx context.Context, msg *nats.Msg) {
	var event models.DriverReleaseRequestedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to parse driver release event", logger.Err(err))
		return
	}

	if err := h.driverUC.Release(ctx, event.DriverID); err != nil {
		nrpkg.NoticeError(ctx, err)
		logger.Error("Failed to release driver",
			logger.String("driver_id", event.DriverID.String()),
			logger.String("order_id", event.OrderID.String()),
			logger.Err(err))
	}
}

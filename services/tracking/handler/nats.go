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

const sampleQueueGroup = "tracking-samples"

// InitNATSConsumers subscribes the tracker to raw location samples
func (h *Handler) InitNATSConsumers(client *natspkg.Client) error {
	sub, err := client.QueueSubscribe(constants.SubjectLocationUpdate, sampleQueueGroup, h.handleLocationSample)
	if err != nil {
		return fmt.Errorf("failed to subscribe to location samples: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

func (h *Handler) handleLocationSample(ctx context.Context, msg *nats.Msg) {
	var sample models.LocationSampleEvent
	if err := json.Unmarshal(msg.Data, &sample); err != nil {
		logger.Error("Failed to parse location sample", logger.Err(err))
		return
	}

	if err := h.trackingUC.Ingest(ctx, &sample); err != nil {
		nrpkg.NoticeError(ctx, err)
		logger.Error("Failed to ingest location sample",
			logger.String("driver_id", sample.DriverID.String()),
			logger.Err(err))
	}
}

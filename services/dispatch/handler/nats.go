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
	"github.com/vicholitvak/moai-logistics/services/dispatch"
)

const assignmentQueueGroup = "dispatch-planner"

// Handler consumes assignment requests for the dispatch planner
type Handler struct {
	dispatchUC dispatch.DispatchUC
	subs       []*nats.Subscription
}

// NewHandler creates a new dispatch handler
func NewHandler(dispatchUC dispatch.DispatchUC) *Handler {
	return &Handler{dispatchUC: dispatchUC}
}

// InitNATSConsumers subscribes the planner to assignment requests emitted
// when orders become ready
func (h *Handler) InitNATSConsumers(client *natspkg.Client) error {
	sub, err := client.QueueSubscribe(constants.SubjectAssignmentRequested, assignmentQueueGroup, h.handleAssignmentRequested)
	if err != nil {
		return fmt.Errorf("failed to subscribe to assignment requests: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

func (h *Handler) handleAssignmentRequested(ctx context.Context, msg *nats.Msg) {
	var event models.AssignmentRequestedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to parse assignment request", logger.Err(err))
		return
	}

	result, err := h.dispatchUC.PlanAssignment(ctx, event.OrderID)
	if err != nil {
		nrpkg.NoticeError(ctx, err)
		logger.Error("Failed to plan assignment",
			logger.String("order_id", event.OrderID.String()),
			logger.Err(err))
		return
	}

	logger.Info("Assignment planned",
		logger.String("order_id", event.OrderID.String()),
		logger.String("outcome", string(result.Outcome)))
}

// Close drains the NATS subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}

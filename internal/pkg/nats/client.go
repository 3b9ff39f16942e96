package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	newrelic "github.com/newrelic/go-agent/v3/newrelic"

	nrpkg "github.com/vicholitvak/moai-logistics/internal/pkg/newrelic"
)

// MsgHandler processes one consumed message. The context carries the
// message transaction when the agent is enabled.
type MsgHandler func(ctx context.Context, msg *nats.Msg)

// Client represents a NATS client for publishing and subscribing to messages
type Client struct {
	conn  *nats.Conn
	nrApp *newrelic.Application
}

// NewClient creates a new NATS client. A nil application disables
// per-message tracing.
func NewClient(url string, nrApp *newrelic.Application) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn, nrApp: nrApp}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish sends a message to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	err := c.conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// PublishJSON marshals a message and sends it to the specified subject
func (c *Client) PublishJSON(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return c.Publish(subject, data)
}

// QueueSubscribe subscribes to a subject inside a queue group so only one
// member of the group receives each message. Every delivery runs inside a
// background transaction named after the subject.
func (c *Client) QueueSubscribe(subject, queueGroup string, handler MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.QueueSubscribe(subject, queueGroup, func(msg *nats.Msg) {
		txn := nrpkg.StartMessageTransaction(c.nrApp, subject)
		defer txn.End()
		handler(nrpkg.MessageContext(context.Background(), txn), msg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return sub, nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

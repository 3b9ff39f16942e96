package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// StartMessageTransaction begins a background transaction for a consumed
// broker message, named after its subject. Safe with a nil application;
// the returned transaction's methods are nil-safe too.
func StartMessageTransaction(app *newrelic.Application, subject string) *newrelic.Transaction {
	if app == nil {
		return nil
	}
	return app.StartTransaction("message/" + subject)
}

// MessageContext returns a context carrying the message transaction so
// downstream segments and error notices attach to it
func MessageContext(ctx context.Context, txn *newrelic.Transaction) context.Context {
	if txn == nil {
		return ctx
	}
	return newrelic.NewContext(ctx, txn)
}

// NoticeError reports an error against the context's transaction, if any
func NoticeError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.NoticeError(err)
	}
}

// WithSegment runs fn inside a timing segment of the context's
// transaction. Untraced contexts just run fn.
func WithSegment(ctx context.Context, name string, fn func() error) error {
	txn := newrelic.FromContext(ctx)
	if txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

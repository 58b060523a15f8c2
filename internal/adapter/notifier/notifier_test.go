package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/fintrack/internal/domain"
)

var at = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func added() domain.Notification {
	return domain.NewTransactionAddedNotification(domain.Transaction{
		ID:     "01HX",
		Amount: decimal.NewFromInt(50),
		Type:   domain.TransactionTypeIncome,
		Date:   at,
	}, at)
}

type recordingPublisher struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (p *recordingPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	p.exchange, p.key, p.msg = exchange, key, msg
	return p.err
}

type funcNotifier func(context.Context, domain.Notification) error

func (f funcNotifier) Notify(ctx context.Context, n domain.Notification) error { return f(ctx, n) }

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	require.NoError(t, n.Notify(context.Background(), added()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Income of $50.00 has been recorded.", entry["message"])
	assert.Equal(t, domain.EventTypeTransactionAdded, entry["event_type"])
	assert.Equal(t, "01HX", entry["transaction_id"])
}

func TestAMQPNotifier_Publishes(t *testing.T) {
	pub := &recordingPublisher{}
	n := newAMQPNotifier(pub, "fintrack.events")

	require.NoError(t, n.Notify(context.Background(), added()))

	assert.Equal(t, "fintrack.events", pub.exchange)
	assert.Equal(t, domain.EventTypeTransactionAdded, pub.key)
	assert.Equal(t, "application/json", pub.msg.ContentType)
	assert.Equal(t, amqp.Persistent, pub.msg.DeliveryMode)

	var got domain.Notification
	require.NoError(t, json.Unmarshal(pub.msg.Body, &got))
	assert.Equal(t, "Transaction added", got.Title)
	assert.Equal(t, domain.VariantDefault, got.Variant)
	assert.NoError(t, n.Close())
}

func TestAMQPNotifier_PublishError(t *testing.T) {
	n := newAMQPNotifier(&recordingPublisher{err: amqp.ErrClosed}, "x")

	err := n.Notify(context.Background(), added())
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestMulti_CallsAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	count := funcNotifier(func(context.Context, domain.Notification) error {
		calls++
		return nil
	})

	m := Multi{
		funcNotifier(func(context.Context, domain.Notification) error { return boom }),
		nil,
		count,
	}

	err := m.Notify(context.Background(), added())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)

	assert.NoError(t, Multi{count}.Notify(context.Background(), added()))
}

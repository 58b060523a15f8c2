package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/iho/fintrack/internal/domain"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier publishes notifications as JSON to a durable direct
// exchange, routed by event type.
type AMQPNotifier struct {
	channel  publisher
	closer   func() error
	exchange string
}

// DialAMQP connects to the broker and declares the exchange.
func DialAMQP(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	n := newAMQPNotifier(ch, exchange)
	n.closer = func() error {
		ch.Close()
		return conn.Close()
	}
	return n, nil
}

func newAMQPNotifier(ch publisher, exchange string) *AMQPNotifier {
	return &AMQPNotifier{
		channel:  ch,
		exchange: exchange,
		closer:   func() error { return nil },
	}
}

// Notify implements usecase.Notifier.
func (n *AMQPNotifier) Notify(ctx context.Context, note domain.Notification) error {
	body, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = n.channel.PublishWithContext(
		ctx,
		n.exchange,     // exchange
		note.EventType, // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    note.CreatedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	log.Debug().
		Str("exchange", n.exchange).
		Str("event_type", note.EventType).
		Str("transaction_id", note.TransactionID).
		Msg("published notification")

	return nil
}

// Close releases the channel and connection.
func (n *AMQPNotifier) Close() error {
	return n.closer()
}

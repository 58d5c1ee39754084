// Package kafka publishes order lifecycle events to Kafka. Consumers
// downstream (notifications, analytics) react to status changes without
// coupling to the ordering service's database.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/Shopify/sarama"
)

// OrderChangedEvent is the wire format of an order status change.
type OrderChangedEvent struct {
	OrderID      string    `json:"orderId"`
	ShopkeeperID string    `json:"shopkeeperId"`
	ZoneID       string    `json:"zoneId"`
	SupplierID   *string   `json:"supplierId,omitempty"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// OrderChangedPublisher implements OrderEventPublisher over a sarama
// sync producer. Messages are keyed by order id so per-order ordering
// survives partitioning.
type OrderChangedPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderChangedPublisher connects to the given brokers and returns a
// publisher for the given topic.
func NewOrderChangedPublisher(
	brokers []string, topic string, logger *slog.Logger,
) (*OrderChangedPublisher, error) {
	saramaConf := sarama.NewConfig()
	saramaConf.Producer.Return.Successes = true
	saramaConf.Producer.Return.Errors = true
	saramaConf.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, saramaConf)
	if err != nil {
		return nil, errs.NewTransientError("kafka connect", err)
	}

	return &OrderChangedPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// PublishOrderChanged emits one event per order. Called after the unit
// of work commits; failures are logged and returned, never retried here.
func (p *OrderChangedPublisher) PublishOrderChanged(_ context.Context, orders ...*order.Order) error {
	messages := make([]*sarama.ProducerMessage, 0, len(orders))
	now := time.Now()

	for _, o := range orders {
		event := OrderChangedEvent{
			OrderID:      o.ID().String(),
			ShopkeeperID: o.ShopkeeperID().String(),
			ZoneID:       o.ZoneID().String(),
			Status:       o.Status().String(),
			OccurredAt:   now,
		}
		if supplier := o.Supplier(); supplier != nil {
			s := supplier.String()
			event.SupplierID = &s
		}

		payload, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("marshal order changed event",
				"orderId", event.OrderID, "error", err)
			return err
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(event.OrderID),
			Value: sarama.ByteEncoder(payload),
		})
	}

	if err := p.producer.SendMessages(messages); err != nil {
		p.logger.Error("publish order changed events",
			"topic", p.topic, "count", len(messages), "error", err)
		return errs.NewTransientError("kafka publish", err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (p *OrderChangedPublisher) Close() error {
	return p.producer.Close()
}

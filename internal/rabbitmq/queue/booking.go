package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/reservio/booking-notifier/internal/model"
)

const (
	ExchangeName  = "booking-exchange"
	MainQueueName = "booking-events"
	DLQName       = "booking-events-dlq"
	RoutingKey    = "booking"
)

// BookingEventMessage is the domain event the booking subsystem publishes
// whenever a reservation is created, confirmed or otherwise transitions.
type BookingEventMessage struct {
	TenantID      uuid.UUID         `json:"tenant_id"`
	ReservationID uuid.UUID         `json:"reservation_id"`
	Trigger       model.TriggerType `json:"trigger"`
}

// BookingQueue wraps the durable booking-events queue with its DLQ.
type BookingQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewBookingQueue declares the exchange, the main queue and its DLQ and
// binds them on the given channel.
func NewBookingQueue(ch *rabbitmq.Channel) (*BookingQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &BookingQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish sends a booking event. Used by the booking subsystem and by tests;
// the notifier itself only consumes.
func (q *BookingQueue) Publish(msg BookingEventMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes booking events onto out until the underlying consumer
// stops. Malformed payloads are logged and dropped.
func (q *BookingQueue) Consume(out chan<- BookingEventMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg BookingEventMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal booking event")
				continue
			}

			out <- msg
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/reservio/booking-notifier/internal/rabbitmq/queue"
	"github.com/reservio/booking-notifier/internal/service/delivery"
)

//go:generate mockgen -source=worker.go -destination=../mocks/worker/mock.go -package=mocks

type bookingQueue interface {
	Consume(out chan<- queue.BookingEventMessage, strategy retry.Strategy) error
}

type bookingHandler interface {
	HandleMessage(ctx context.Context, msg queue.BookingEventMessage, strategy retry.Strategy)
}

type deliveryService interface {
	RunDeliveryPass(ctx context.Context, strategy retry.Strategy) (delivery.PassStats, error)
}

// Worker drives the two background flows: the booking-event consumer that
// feeds the scheduler, and the periodic delivery pass. Delivery passes run
// on a single goroutine, so passes never overlap in-process.
type Worker struct {
	queue    bookingQueue
	handler  bookingHandler
	delivery deliveryService
}

func NewWorker(q bookingQueue, h bookingHandler, d deliveryService) *Worker {
	return &Worker{
		queue:    q,
		handler:  h,
		delivery: d,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context, strategy retry.Strategy, pollInterval time.Duration) {
	msgChan := make(chan queue.BookingEventMessage)

	go func() {
		if err := w.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume booking events")
		}
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				zlog.Logger.Print("booking consumer shutting down")
				return
			case msg := <-msgChan:
				w.handler.HandleMessage(ctx, msg, strategy)
			}
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("delivery worker stopped")
			return
		case <-ticker.C:
			stats, err := w.delivery.RunDeliveryPass(ctx, strategy)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("delivery pass failed")
				continue
			}

			if stats.Selected > 0 {
				zlog.Logger.Info().
					Int("selected", stats.Selected).
					Int("sent", stats.Sent).
					Int("cancelled", stats.Cancelled).
					Int("failed", stats.Failed).
					Msg("delivery pass finished")
			}
		}
	}
}

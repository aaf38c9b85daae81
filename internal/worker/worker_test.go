package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	mocks "github.com/reservio/booking-notifier/internal/mocks/worker"
	"github.com/reservio/booking-notifier/internal/model"
	"github.com/reservio/booking-notifier/internal/rabbitmq/queue"
	"github.com/reservio/booking-notifier/internal/service/delivery"
)

func TestWorker_Run_DispatchesEventsAndRunsPasses(t *testing.T) {
	zlog.Init()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMockbookingQueue(ctrl)
	mockHandler := mocks.NewMockbookingHandler(ctrl)
	mockDelivery := mocks.NewMockdeliveryService(ctrl)

	strategy := retry.Strategy{Attempts: 1}
	event := queue.BookingEventMessage{
		TenantID:      uuid.New(),
		ReservationID: uuid.New(),
		Trigger:       model.TriggerReservationConfirmed,
	}

	mockQueue.EXPECT().
		Consume(gomock.Any(), strategy).
		DoAndReturn(func(out chan<- queue.BookingEventMessage, _ retry.Strategy) error {
			out <- event
			return nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	mockHandler.EXPECT().
		HandleMessage(gomock.Any(), event, strategy).
		Do(func(_ context.Context, _ queue.BookingEventMessage, _ retry.Strategy) {
			wg.Done()
		})

	mockDelivery.EXPECT().
		RunDeliveryPass(gomock.Any(), strategy).
		Return(delivery.PassStats{Selected: 1, Sent: 1}, nil).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())

	w := NewWorker(mockQueue, mockHandler, mockDelivery)
	done := make(chan struct{})
	go func() {
		w.Run(ctx, strategy, 20*time.Millisecond)
		close(done)
	}()

	wg.Wait()
	time.Sleep(100 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestWorker_Run_PassFailureKeepsTicking(t *testing.T) {
	zlog.Init()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMockbookingQueue(ctrl)
	mockHandler := mocks.NewMockbookingHandler(ctrl)
	mockDelivery := mocks.NewMockdeliveryService(ctrl)

	strategy := retry.Strategy{Attempts: 1}

	mockQueue.EXPECT().Consume(gomock.Any(), strategy).Return(nil)

	// First pass fails, the loop carries on to the next tick.
	gomock.InOrder(
		mockDelivery.EXPECT().RunDeliveryPass(gomock.Any(), strategy).
			Return(delivery.PassStats{}, errors.New("db down")),
		mockDelivery.EXPECT().RunDeliveryPass(gomock.Any(), strategy).
			Return(delivery.PassStats{}, nil).
			MinTimes(1),
	)
	_ = mockHandler

	ctx, cancel := context.WithCancel(context.Background())

	w := NewWorker(mockQueue, mockHandler, mockDelivery)
	done := make(chan struct{})
	go func() {
		w.Run(ctx, strategy, 20*time.Millisecond)
		close(done)
	}()

	time.Sleep(120 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

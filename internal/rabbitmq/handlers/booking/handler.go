package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/reservio/booking-notifier/internal/model"
	"github.com/reservio/booking-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/booking/mock.go -package=mocks
type schedulerService interface {
	ScheduleForTrigger(ctx context.Context, strategy retry.Strategy, tenantID, reservationID uuid.UUID, trigger model.TriggerType) (int, error)
}

// Handler consumes booking events and turns them into scheduled
// notifications. Failures are logged and swallowed so one bad event never
// stops the consumer.
type Handler struct {
	scheduler schedulerService
}

func NewHandler(scheduler schedulerService) *Handler {
	return &Handler{scheduler: scheduler}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.BookingEventMessage, strategy retry.Strategy) {
	zlog.Logger.Info().
		Str("reservation_id", msg.ReservationID.String()).
		Str("trigger", string(msg.Trigger)).
		Msg("handling booking event")

	created, err := h.scheduler.ScheduleForTrigger(ctx, strategy, msg.TenantID, msg.ReservationID, msg.Trigger)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("reservation_id", msg.ReservationID.String()).
			Str("trigger", string(msg.Trigger)).
			Msg("failed to schedule notifications for booking event")
		return
	}

	zlog.Logger.Info().
		Str("reservation_id", msg.ReservationID.String()).
		Int("created", created).
		Msg("booking event scheduled")
}

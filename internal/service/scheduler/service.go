// Package scheduler translates domain events on reservations into durable
// scheduled notification rows, one per active matching template.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/reservio/booking-notifier/internal/model"
	"github.com/reservio/booking-notifier/internal/phone"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/scheduler/mock.go -package=mocks

type templateRepository interface {
	GetActiveTemplates(ctx context.Context, tenantID uuid.UUID, trigger model.TriggerType) ([]model.Template, error)
}

type notificationRepository interface {
	CreateNotification(context.Context, model.ScheduledNotification) (uuid.UUID, error)
}

type reservationRepository interface {
	GetReservationByID(ctx context.Context, tenantID, id uuid.UUID) (model.Reservation, error)
}

type tenantService interface {
	MessagingEnabled(ctx context.Context, strategy retry.Strategy, tenantID uuid.UUID) (bool, error)
}

// Service is the scheduling side of the notification subsystem. It never
// sends anything itself; its only side effect is inserting rows.
type Service struct {
	templates     templateRepository
	notifications notificationRepository
	reservations  reservationRepository
	tenants       tenantService
	normalizer    phone.Normalizer
}

// NewService creates a new scheduler service.
func NewService(
	templates templateRepository,
	notifications notificationRepository,
	reservations reservationRepository,
	tenants tenantService,
	normalizer phone.Normalizer,
) *Service {
	return &Service{
		templates:     templates,
		notifications: notifications,
		reservations:  reservations,
		tenants:       tenants,
		normalizer:    normalizer,
	}
}

// ScheduleForTrigger creates one scheduled notification per active template
// matching the trigger for the reservation's tenant, and returns the number
// created. A disabled messaging flag is a silent no-op, not an error.
// Per-template insert failures are logged and do not abort sibling
// templates; an unloadable reservation aborts the whole call.
func (s *Service) ScheduleForTrigger(ctx context.Context, strategy retry.Strategy, tenantID, reservationID uuid.UUID, trigger model.TriggerType) (int, error) {
	enabled, err := s.tenants.MessagingEnabled(ctx, strategy, tenantID)
	if err != nil {
		return 0, fmt.Errorf("check messaging flag: %w", err)
	}
	if !enabled {
		return 0, nil
	}

	res, err := s.reservations.GetReservationByID(ctx, tenantID, reservationID)
	if err != nil {
		return 0, fmt.Errorf("load reservation %s: %w", reservationID, err)
	}

	templates, err := s.templates.GetActiveTemplates(ctx, tenantID, trigger)
	if err != nil {
		return 0, fmt.Errorf("load templates: %w", err)
	}

	snapshot := model.NewVariableSnapshot(res)
	recipient := s.normalizer.Normalize(res.Customer.Phone)
	now := time.Now()

	created := 0
	for _, tpl := range templates {
		n, ok := buildNotification(tpl, res, trigger, snapshot, recipient, now)
		if !ok {
			continue
		}

		if _, err := s.notifications.CreateNotification(ctx, n); err != nil {
			zlog.Logger.Error().Err(err).
				Str("template_id", tpl.ID.String()).
				Str("reservation_id", reservationID.String()).
				Msg("failed to create scheduled notification")
			continue
		}

		created++
	}

	return created, nil
}

// buildNotification computes the due time for one template and assembles
// the row. It returns ok=false when the trigger rules say no record should
// exist at all.
func buildNotification(
	tpl model.Template,
	res model.Reservation,
	trigger model.TriggerType,
	snapshot model.VariableSnapshot,
	recipient string,
	now time.Time,
) (model.ScheduledNotification, bool) {
	n := model.ScheduledNotification{
		TenantID:      tpl.TenantID,
		TemplateID:    tpl.ID,
		ReservationID: res.ID,
		Variables:     snapshot,
		Recipient:     recipient,
	}

	delay := time.Duration(tpl.DelayHours) * time.Hour

	switch trigger {
	case model.TriggerReservationConfirmed:
		if tpl.DelayHours == 0 {
			// A record due exactly "now" is already in the past by the
			// next poll's due filter; push it one minute out instead.
			n.ScheduledFor = now.Add(time.Minute)
		} else {
			n.ScheduledFor = now.Add(delay)
		}

	case model.TriggerCheckInReminder:
		n.ScheduledFor = res.StartDate.Add(-delay)
		if n.ScheduledFor.Before(now) {
			if res.StartDate.Before(now) {
				// The stay already started, the reminder is moot.
				return model.ScheduledNotification{}, false
			}

			// The reminder window has passed but the stay hasn't started:
			// keep the history row, pre-marked as sent, without messaging
			// the customer.
			sentAt := now.Add(-time.Hour)
			n.Sent = true
			n.SentAt = &sentAt
		}

	case model.TriggerCheckOutReminder:
		n.ScheduledFor = res.EndDate.Add(-delay)
		if n.ScheduledFor.Before(now) {
			return model.ScheduledNotification{}, false
		}

	default:
		n.ScheduledFor = now.Add(delay)
	}

	return n, true
}

// Package delivery runs the periodic pass over due scheduled notifications
// and applies the per-record state transition: atomic attempt claim,
// cancelled short-circuit, send, outcome.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/reservio/booking-notifier/internal/channel/whatsapp"
	"github.com/reservio/booking-notifier/internal/model"
)

var (
	ErrAlreadySent       = errors.New("notification already sent")
	ErrAttemptsExhausted = errors.New("delivery attempts exhausted")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/delivery/mock.go -package=mocks

type notificationRepository interface {
	GetDueNotifications(ctx context.Context, maxAttempts, limit int) ([]model.ScheduledNotification, error)
	GetNotificationByID(ctx context.Context, id uuid.UUID) (model.ScheduledNotification, error)
	ClaimAttempt(ctx context.Context, id uuid.UUID, maxAttempts int) (bool, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkCancelled(ctx context.Context, id uuid.UUID) error
	SetLastError(ctx context.Context, id uuid.UUID, lastError string) error
}

type reservationRepository interface {
	GetReservationByID(ctx context.Context, tenantID, id uuid.UUID) (model.Reservation, error)
}

type messageSender interface {
	Send(ctx context.Context, strategy retry.Strategy, tenantID, templateID uuid.UUID, recipient string, vars map[string]string) (whatsapp.Result, error)
}

// PassStats summarizes one delivery pass.
type PassStats struct {
	Selected  int `json:"selected"`
	Sent      int `json:"sent"`
	Cancelled int `json:"cancelled"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Service is the delivery side of the notification subsystem. It holds no
// state between passes; each pass is idempotent at the granularity of
// "sent or at the attempt cap".
type Service struct {
	notifications notificationRepository
	reservations  reservationRepository
	sender        messageSender

	batchSize int
	sendDelay time.Duration
}

// NewService creates a new delivery service.
func NewService(
	notifications notificationRepository,
	reservations reservationRepository,
	sender messageSender,
	batchSize int,
	sendDelay time.Duration,
) *Service {
	return &Service{
		notifications: notifications,
		reservations:  reservations,
		sender:        sender,
		batchSize:     batchSize,
		sendDelay:     sendDelay,
	}
}

// RunDeliveryPass selects one batch of due, unsent records and attempts
// delivery strictly in sequence. One bad record never aborts the pass.
func (s *Service) RunDeliveryPass(ctx context.Context, strategy retry.Strategy) (PassStats, error) {
	var stats PassStats

	due, err := s.notifications.GetDueNotifications(ctx, model.MaxAttempts, s.batchSize)
	if err != nil {
		return stats, fmt.Errorf("get due notifications: %w", err)
	}

	stats.Selected = len(due)
	if len(due) == 0 {
		return stats, nil
	}

	for i, n := range due {
		if i > 0 {
			// Deliberate throttle between records for transport-side
			// rate limits, not backpressure.
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-time.After(s.sendDelay):
			}
		}

		switch outcome := s.deliverOne(ctx, strategy, n); outcome {
		case outcomeSent:
			stats.Sent++
		case outcomeCancelled:
			stats.Cancelled++
		case outcomeFailed:
			stats.Failed++
		case outcomeSkipped:
			stats.Skipped++
		}
	}

	return stats, nil
}

// SendNow performs the operator "send now" action for one record. It applies
// exactly the same transition as a worker attempt, including the
// cancelled-reservation short-circuit. A record that cannot claim an attempt
// (at the cap, or taken by a concurrent pass) returns ErrAttemptsExhausted
// instead of silently doing nothing.
func (s *Service) SendNow(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.ScheduledNotification, error) {
	n, err := s.notifications.GetNotificationByID(ctx, id)
	if err != nil {
		return model.ScheduledNotification{}, err
	}

	if n.Sent {
		return model.ScheduledNotification{}, ErrAlreadySent
	}

	if s.deliverOne(ctx, strategy, n) == outcomeSkipped {
		return model.ScheduledNotification{}, ErrAttemptsExhausted
	}

	return s.notifications.GetNotificationByID(ctx, id)
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeCancelled
	outcomeFailed
	outcomeSkipped
)

// deliverOne applies the single-record state machine. Every failure path
// ends in a persisted field or a logged error, never a panic.
func (s *Service) deliverOne(ctx context.Context, strategy retry.Strategy, n model.ScheduledNotification) outcome {
	// The attempt is consumed first: the conditional update is the claim,
	// so a concurrent pass cannot process the same record, and every
	// failure mode after this point counts toward the cap. A record whose
	// reservation is permanently unloadable exhausts its attempts instead
	// of occupying the head of every batch forever.
	claimed, err := s.notifications.ClaimAttempt(ctx, n.ID, model.MaxAttempts)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to claim delivery attempt")
		return outcomeFailed
	}
	if !claimed {
		zlog.Logger.Warn().Str("id", n.ID.String()).Msg("notification already claimed or exhausted, skipping")
		return outcomeSkipped
	}

	res, err := s.reservations.GetReservationByID(ctx, n.TenantID, n.ReservationID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to load reservation for delivery")
		if setErr := s.notifications.SetLastError(ctx, n.ID, err.Error()); setErr != nil {
			zlog.Logger.Error().Err(setErr).Str("id", n.ID.String()).Msg("failed to record delivery error")
		}
		return outcomeFailed
	}

	if res.Cancelled() {
		// Terminal success-shaped state; the record is never retried.
		if err := s.notifications.MarkCancelled(ctx, n.ID); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification cancelled")
			return outcomeFailed
		}
		return outcomeCancelled
	}

	result, err := s.sender.Send(ctx, strategy, n.TenantID, n.TemplateID, n.Recipient, n.Variables.Map())
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to send notification")
		if setErr := s.notifications.SetLastError(ctx, n.ID, err.Error()); setErr != nil {
			zlog.Logger.Error().Err(setErr).Str("id", n.ID.String()).Msg("failed to record delivery error")
		}
		return outcomeFailed
	}

	if err := s.notifications.MarkSent(ctx, n.ID); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification sent")
		return outcomeFailed
	}

	zlog.Logger.Info().
		Str("id", n.ID.String()).
		Str("message_id", result.MessageID).
		Msg("notification sent")

	return outcomeSent
}

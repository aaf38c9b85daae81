package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/reservio/booking-notifier/internal/api/respond"
	"github.com/reservio/booking-notifier/internal/config"
	"github.com/reservio/booking-notifier/internal/model"
	"github.com/reservio/booking-notifier/internal/render"
	notifrepo "github.com/reservio/booking-notifier/internal/repository/notification"
	"github.com/reservio/booking-notifier/internal/service/delivery"
)

// deliveryService abstracts the delivery pass and the manual send-now
// transition the handler exposes.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type deliveryService interface {
	RunDeliveryPass(ctx context.Context, strategy retry.Strategy) (delivery.PassStats, error)
	SendNow(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.ScheduledNotification, error)
}

type notificationRepository interface {
	GetNotificationsByReservation(ctx context.Context, tenantID, reservationID uuid.UUID) ([]model.ScheduledNotification, error)
}

// Handler handles HTTP requests of the notification subsystem: the cron
// delivery trigger, the operator send-now action, the per-reservation
// history view and the template preview.
type Handler struct {
	delivery      deliveryService
	notifications notificationRepository
	validator     *validator.Validate
	cfg           *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	d deliveryService,
	n notificationRepository,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{delivery: d, notifications: n, validator: v, cfg: cfg}
}

// NotificationView is the operator-facing projection of a scheduled
// notification with its derived state.
type NotificationView struct {
	model.ScheduledNotification
	Status string `json:"status"`
}

// PreviewRequest represents the JSON body of a template preview request.
type PreviewRequest struct {
	Body      string            `json:"body" validate:"required"`
	Variables map[string]string `json:"variables"`
}

// RunDeliveryPass handles the periodic cron trigger. A pass that finds
// nothing due is a successful no-op.
func (h *Handler) RunDeliveryPass(c *ginext.Context) {
	stats, err := h.delivery.RunDeliveryPass(c.Request.Context(), h.cfg.Retry)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("delivery pass failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}

// SendNow handles the operator "send now" action for a single notification.
func (h *Handler) SendNow(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	n, err := h.delivery.SendNow(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		if errors.Is(err, delivery.ErrAlreadySent) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("notification already sent"))
			return
		}

		if errors.Is(err, delivery.ErrAttemptsExhausted) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("delivery attempts exhausted"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to send notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, NotificationView{ScheduledNotification: n, Status: n.Status()})
}

// ListForReservation handles the operator history view: every scheduled
// notification for one reservation with its current state and error history.
func (h *Handler) ListForReservation(c *ginext.Context) {
	tenantID, err := uuid.Parse(c.GetHeader("X-Tenant-ID"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid tenant id"))
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid reservation id"))
		return
	}

	notifications, err := h.notifications.GetNotificationsByReservation(c.Request.Context(), tenantID, reservationID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("reservation_id", reservationID).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	views := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, NotificationView{ScheduledNotification: n, Status: n.Status()})
	}

	respond.OK(c.Writer, views)
}

// PreviewTemplate renders a template body with the preview renderer, which
// marks unmatched placeholders instead of leaving them literal.
func (h *Handler) PreviewTemplate(c *ginext.Context) {
	var req PreviewRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	respond.OK(c.Writer, render.Preview(req.Body, req.Variables))
}

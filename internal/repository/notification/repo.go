package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/reservio/booking-notifier/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with the scheduled_notifications
// table. Rows are created by the scheduler and mutated only through the
// delivery transition methods below.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new scheduled notification and returns its ID.
// A pre-sent record (check-in backfill) carries Sent/SentAt already set.
func (r *Repository) CreateNotification(ctx context.Context, n model.ScheduledNotification) (uuid.UUID, error) {
	variables, err := json.Marshal(n.Variables)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal variables: %w", err)
	}

	query := `
		INSERT INTO scheduled_notifications (
		    tenant_id, template_id, reservation_id, scheduled_for, variables, recipient, sent, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err = r.db.Master.QueryRowContext(
		ctx, query,
		n.TenantID, n.TemplateID, n.ReservationID, n.ScheduledFor, variables, n.Recipient, n.Sent, n.SentAt,
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// GetDueNotifications returns unsent records whose scheduled time has
// passed and whose attempts are below the cap, oldest first, capped to limit.
func (r *Repository) GetDueNotifications(ctx context.Context, maxAttempts, limit int) ([]model.ScheduledNotification, error) {
	query := `
		SELECT id, tenant_id, template_id, reservation_id, scheduled_for, variables, recipient,
		       sent, sent_at, attempts, last_attempt_at, last_error, created_at
		FROM scheduled_notifications
		WHERE sent = FALSE AND scheduled_for <= now() AND attempts < $1
		ORDER BY scheduled_for ASC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get due notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.ScheduledNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// ClaimAttempt consumes one delivery attempt atomically. The conditional
// update doubles as the claim: a concurrent pass that already claimed the
// record, or a record that is sent or at the cap, yields false.
func (r *Repository) ClaimAttempt(ctx context.Context, id uuid.UUID, maxAttempts int) (bool, error) {
	query := `
		UPDATE scheduled_notifications
		SET attempts = attempts + 1, last_attempt_at = now()
		WHERE id = $1 AND sent = FALSE AND attempts < $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, maxAttempts)
	if err != nil {
		return false, fmt.Errorf("failed to claim attempt: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// MarkSent records a successful delivery.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE scheduled_notifications
		SET sent = TRUE, sent_at = now()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkCancelled closes a record whose reservation was cancelled. The state
// is success-shaped so the record is never retried; the note in last_error
// is audit history only.
func (r *Repository) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE scheduled_notifications
		SET sent = TRUE, sent_at = now(), last_attempt_at = now(), last_error = $2
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id, model.CancelledNote)
	if err != nil {
		return fmt.Errorf("failed to mark notification cancelled: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// SetLastError records the outcome of a failed attempt. The record stays
// unsent and eligible for a future pass until the attempt cap.
func (r *Repository) SetLastError(ctx context.Context, id uuid.UUID, lastError string) error {
	query := `
		UPDATE scheduled_notifications
		SET last_error = $2
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id, lastError)
	if err != nil {
		return fmt.Errorf("failed to set last error: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// GetNotificationByID retrieves a single notification.
func (r *Repository) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.ScheduledNotification, error) {
	query := `
		SELECT id, tenant_id, template_id, reservation_id, scheduled_for, variables, recipient,
		       sent, sent_at, attempts, last_attempt_at, last_error, created_at
		FROM scheduled_notifications
		WHERE id = $1;
    `

	row := r.db.Master.QueryRowContext(ctx, query, id)

	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ScheduledNotification{}, ErrNotificationNotFound
		}

		return model.ScheduledNotification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetNotificationsByReservation returns the full notification history for
// one reservation, for the operator history view.
func (r *Repository) GetNotificationsByReservation(ctx context.Context, tenantID, reservationID uuid.UUID) ([]model.ScheduledNotification, error) {
	query := `
		SELECT id, tenant_id, template_id, reservation_id, scheduled_for, variables, recipient,
		       sent, sent_at, attempts, last_attempt_at, last_error, created_at
		FROM scheduled_notifications
		WHERE tenant_id = $1 AND reservation_id = $2
		ORDER BY scheduled_for ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, tenantID, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications for reservation: %w", err)
	}
	defer rows.Close()

	var notifications []model.ScheduledNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row scanner) (model.ScheduledNotification, error) {
	var (
		n         model.ScheduledNotification
		variables []byte
		sentAt    sql.NullTime
		lastAt    sql.NullTime
		lastErr   sql.NullString
	)

	err := row.Scan(
		&n.ID, &n.TenantID, &n.TemplateID, &n.ReservationID, &n.ScheduledFor, &variables, &n.Recipient,
		&n.Sent, &sentAt, &n.Attempts, &lastAt, &lastErr, &n.CreatedAt,
	)
	if err != nil {
		return model.ScheduledNotification{}, err
	}

	if len(variables) > 0 {
		if err := json.Unmarshal(variables, &n.Variables); err != nil {
			return model.ScheduledNotification{}, fmt.Errorf("failed to unmarshal variables: %w", err)
		}
	}

	if sentAt.Valid {
		t := sentAt.Time
		n.SentAt = &t
	}
	if lastAt.Valid {
		t := lastAt.Time
		n.LastAttemptAt = &t
	}
	if lastErr.Valid {
		s := lastErr.String
		n.LastError = &s
	}

	return n, nil
}

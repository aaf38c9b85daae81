package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// MaxAttempts is the delivery attempt cap. A record that reaches it without
// succeeding is terminal and never selected for delivery again.
const MaxAttempts = 3

// Notification status values derived from the persisted fields.
const (
	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusCancelled = "cancelled"
	StatusFailed    = "failed"
)

// CancelledNote is stored in LastError when a reservation was cancelled
// before delivery. It is an audit note, not a failure.
const CancelledNote = "cancelled"

// VariableSnapshot is the frozen set of rendered-message inputs captured at
// scheduling time. Later edits to the reservation do not change it.
type VariableSnapshot struct {
	FirstName     string `json:"first_name"`
	FullName      string `json:"full_name"`
	PetName       string `json:"pet_name"`
	CheckInDate   string `json:"check_in_date"`
	CheckInTime   string `json:"check_in_time"`
	CheckOutDate  string `json:"check_out_date"`
	RoomName      string `json:"room_name"`
	ReservationID string `json:"reservation_id"`
}

// Map returns the snapshot as placeholder variables for the renderer.
func (v VariableSnapshot) Map() map[string]string {
	return map[string]string{
		"first_name":     v.FirstName,
		"full_name":      v.FullName,
		"pet_name":       v.PetName,
		"check_in_date":  v.CheckInDate,
		"check_in_time":  v.CheckInTime,
		"check_out_date": v.CheckOutDate,
		"room_name":      v.RoomName,
		"reservation_id": v.ReservationID,
	}
}

// NewVariableSnapshot builds the snapshot from the reservation data
// available at scheduling time.
func NewVariableSnapshot(r Reservation) VariableSnapshot {
	return VariableSnapshot{
		FirstName:     r.Customer.FirstName,
		FullName:      r.Customer.FullName(),
		PetName:       r.PetName,
		CheckInDate:   r.StartDate.Format("02/01/2006"),
		CheckInTime:   r.StartDate.Format("15:04"),
		CheckOutDate:  r.EndDate.Format("02/01/2006"),
		RoomName:      r.Room.Name,
		ReservationID: strconv.Itoa(r.Number),
	}
}

// ScheduledNotification is one pending or delivered templated message tied
// to a reservation. Created only by the scheduler, mutated only by the
// delivery path (worker or manual send-now).
type ScheduledNotification struct {
	ID            uuid.UUID        `json:"id"`
	TenantID      uuid.UUID        `json:"tenant_id"`
	TemplateID    uuid.UUID        `json:"template_id"`
	ReservationID uuid.UUID        `json:"reservation_id"`
	ScheduledFor  time.Time        `json:"scheduled_for"`
	Variables     VariableSnapshot `json:"variables"`
	Recipient     string           `json:"recipient"`
	Sent          bool             `json:"sent"`
	SentAt        *time.Time       `json:"sent_at,omitempty"`
	Attempts      int              `json:"attempts"`
	LastAttemptAt *time.Time       `json:"last_attempt_at,omitempty"`
	LastError     *string          `json:"last_error,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Status derives the operator-facing state. Records stuck at the attempt cap
// surface as failed instead of being silently invisible.
func (n ScheduledNotification) Status() string {
	switch {
	case n.Sent && n.LastError != nil && *n.LastError == CancelledNote:
		return StatusCancelled
	case n.Sent:
		return StatusSent
	case n.Attempts >= MaxAttempts:
		return StatusFailed
	default:
		return StatusPending
	}
}

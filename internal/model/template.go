package model

import "github.com/google/uuid"

// TriggerType is the domain event category a message template responds to.
type TriggerType string

const (
	TriggerReservationConfirmed TriggerType = "reservation_confirmed"
	TriggerCheckInReminder      TriggerType = "check_in_reminder"
	TriggerCheckOutReminder     TriggerType = "check_out_reminder"
	TriggerPaymentReminder      TriggerType = "payment_reminder"
	TriggerCustom               TriggerType = "custom"
)

// Template is a tenant-scoped message template. DelayHours is interpreted
// relative to "now" for confirmation/custom triggers and relative to the
// reservation boundary for check-in/check-out reminders.
type Template struct {
	ID         uuid.UUID   `json:"id"`
	TenantID   uuid.UUID   `json:"tenant_id"`
	Name       string      `json:"name"`
	Trigger    TriggerType `json:"trigger"`
	Subject    string      `json:"subject"`
	Body       string      `json:"body"`
	DelayHours int         `json:"delay_hours"`
	Active     bool        `json:"active"`
}

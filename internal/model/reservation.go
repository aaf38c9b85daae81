package model

import (
	"time"

	"github.com/google/uuid"
)

// Reservation status values as stored by the booking subsystem. The
// notifier only cares about the cancelled state.
const (
	ReservationCancelled = "cancelled"
)

// Customer is the reservation's contact, read-only for the notifier.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
}

// FullName joins first and last name for template variables.
func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Room is the booked unit, read-only for the notifier.
type Room struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Reservation is a booking record consumed read-only, with its customer and
// room already resolved.
type Reservation struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Number    int       `json:"number"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	PetName   string    `json:"pet_name"`
	Customer  Customer  `json:"customer"`
	Room      Room      `json:"room"`
}

// Cancelled reports whether the reservation was cancelled.
func (r Reservation) Cancelled() bool {
	return r.Status == ReservationCancelled
}

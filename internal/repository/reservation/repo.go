package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/reservio/booking-notifier/internal/model"
)

var ErrReservationNotFound = errors.New("reservation not found")

// Repository provides read-only access to the booking subsystem's
// reservations, with customer, room and pet resolved in one query. The
// notifier never writes to these tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reservation repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetReservationByID loads a reservation with its related customer and room.
func (r *Repository) GetReservationByID(ctx context.Context, tenantID, id uuid.UUID) (model.Reservation, error) {
	query := `
		SELECT r.id, r.tenant_id, r.number, r.start_date, r.end_date, r.status,
		       COALESCE(p.name, ''),
		       c.id, c.first_name, COALESCE(c.last_name, ''), COALESCE(c.phone, ''),
		       rm.id, rm.name
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		JOIN rooms rm ON rm.id = r.room_id
		LEFT JOIN pets p ON p.id = r.pet_id
		WHERE r.id = $1 AND r.tenant_id = $2;
    `

	var res model.Reservation
	err := r.db.Master.QueryRowContext(ctx, query, id, tenantID).Scan(
		&res.ID, &res.TenantID, &res.Number, &res.StartDate, &res.EndDate, &res.Status,
		&res.PetName,
		&res.Customer.ID, &res.Customer.FirstName, &res.Customer.LastName, &res.Customer.Phone,
		&res.Room.ID, &res.Room.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, ErrReservationNotFound
		}

		return model.Reservation{}, fmt.Errorf("failed to get reservation: %w", err)
	}

	return res, nil
}

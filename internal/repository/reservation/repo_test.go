package reservation

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetReservationByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	tenantID := uuid.New()
	reservationID := uuid.New()
	customerID := uuid.New()
	roomID := uuid.New()
	start := time.Now().Add(48 * time.Hour)
	end := start.Add(72 * time.Hour)

	query := regexp.QuoteMeta(`
		SELECT r.id, r.tenant_id, r.number, r.start_date, r.end_date, r.status,
		       COALESCE(p.name, ''),
		       c.id, c.first_name, COALESCE(c.last_name, ''), COALESCE(c.phone, ''),
		       rm.id, rm.name
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		JOIN rooms rm ON rm.id = r.room_id
		LEFT JOIN pets p ON p.id = r.pet_id
		WHERE r.id = $1 AND r.tenant_id = $2;
    `)

	columns := []string{
		"id", "tenant_id", "number", "start_date", "end_date", "status",
		"pet_name", "customer_id", "first_name", "last_name", "phone", "room_id", "room_name",
	}

	mock.ExpectQuery(query).
		WithArgs(reservationID, tenantID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(reservationID, tenantID, 4711, start, end, "confirmed",
				"Rex", customerID, "Dana", "Levi", "0521234567", roomID, "Garden Suite"))

	res, err := repo.GetReservationByID(context.Background(), tenantID, reservationID)
	assert.NoError(t, err)
	assert.Equal(t, reservationID, res.ID)
	assert.Equal(t, 4711, res.Number)
	assert.Equal(t, "Rex", res.PetName)
	assert.Equal(t, "Dana Levi", res.Customer.FullName())
	assert.Equal(t, "Garden Suite", res.Room.Name)
	assert.False(t, res.Cancelled())

	mock.ExpectQuery(query).
		WithArgs(reservationID, tenantID).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetReservationByID(context.Background(), tenantID, reservationID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

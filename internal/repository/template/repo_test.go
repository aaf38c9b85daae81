package template

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/reservio/booking-notifier/internal/model"
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

func templateColumns() []string {
	return []string{"id", "tenant_id", "name", "trigger", "subject", "body", "delay_hours", "active"}
}

func TestGetActiveTemplates(t *testing.T) {
	repo, mock := setupMockDB(t)

	tenantID := uuid.New()
	rows := sqlmock.NewRows(templateColumns()).
		AddRow(uuid.New(), tenantID, "check-in 24h", model.TriggerCheckInReminder, "Reminder", "See you {check_in_date}", 24, true).
		AddRow(uuid.New(), tenantID, "check-in 48h", model.TriggerCheckInReminder, "Reminder", "See you soon", 48, true)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, tenant_id, name, trigger, subject, body, delay_hours, active
		FROM message_templates
		WHERE tenant_id = $1 AND trigger = $2 AND active = TRUE
		ORDER BY name;
    `)).
		WithArgs(tenantID, model.TriggerCheckInReminder).
		WillReturnRows(rows)

	templates, err := repo.GetActiveTemplates(context.Background(), tenantID, model.TriggerCheckInReminder)
	assert.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, 24, templates[0].DelayHours)
	assert.Equal(t, "check-in 48h", templates[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveTemplates_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	tenantID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, tenant_id, name, trigger, subject, body, delay_hours, active
		FROM message_templates
		WHERE tenant_id = $1 AND trigger = $2 AND active = TRUE
		ORDER BY name;
    `)).
		WithArgs(tenantID, model.TriggerCustom).
		WillReturnRows(sqlmock.NewRows(templateColumns()))

	templates, err := repo.GetActiveTemplates(context.Background(), tenantID, model.TriggerCustom)
	assert.NoError(t, err)
	assert.Empty(t, templates)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveTemplateByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	tenantID := uuid.New()
	templateID := uuid.New()

	query := regexp.QuoteMeta(`
		SELECT id, tenant_id, name, trigger, subject, body, delay_hours, active
		FROM message_templates
		WHERE id = $1 AND tenant_id = $2 AND active = TRUE;
    `)

	mock.ExpectQuery(query).
		WithArgs(templateID, tenantID).
		WillReturnRows(sqlmock.NewRows(templateColumns()).
			AddRow(templateID, tenantID, "confirmation", model.TriggerReservationConfirmed, "Confirmed", "Hi {first_name}", 0, true))

	tpl, err := repo.GetActiveTemplateByID(context.Background(), tenantID, templateID)
	assert.NoError(t, err)
	assert.Equal(t, templateID, tpl.ID)
	assert.Equal(t, "Hi {first_name}", tpl.Body)

	// Deactivated or deleted templates surface as not found.
	mock.ExpectQuery(query).
		WithArgs(templateID, tenantID).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetActiveTemplateByID(context.Background(), tenantID, templateID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/reservio/booking-notifier/internal/model"
)

var ErrTemplateNotFound = errors.New("template not found")

// Repository provides read access to the message_templates table. Templates
// are created and edited by tenant operators outside this service; deleting
// one cascades to its scheduled notifications at the schema level.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new template repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetActiveTemplates returns all active templates for the tenant and trigger
// type, in name order. An empty result is not an error.
func (r *Repository) GetActiveTemplates(ctx context.Context, tenantID uuid.UUID, trigger model.TriggerType) ([]model.Template, error) {
	query := `
		SELECT id, tenant_id, name, trigger, subject, body, delay_hours, active
		FROM message_templates
		WHERE tenant_id = $1 AND trigger = $2 AND active = TRUE
		ORDER BY name;
    `

	rows, err := r.db.QueryContext(ctx, query, tenantID, trigger)
	if err != nil {
		return nil, fmt.Errorf("failed to get active templates: %w", err)
	}
	defer rows.Close()

	var templates []model.Template
	for rows.Next() {
		var t model.Template
		if err := rows.Scan(&t.ID, &t.TenantID, &t.Name, &t.Trigger, &t.Subject, &t.Body, &t.DelayHours, &t.Active); err != nil {
			return nil, err
		}

		templates = append(templates, t)
	}

	return templates, rows.Err()
}

// GetActiveTemplateByID returns one active template. A template deleted or
// deactivated since scheduling yields ErrTemplateNotFound, so delivery fails
// instead of sending stale content.
func (r *Repository) GetActiveTemplateByID(ctx context.Context, tenantID, id uuid.UUID) (model.Template, error) {
	query := `
		SELECT id, tenant_id, name, trigger, subject, body, delay_hours, active
		FROM message_templates
		WHERE id = $1 AND tenant_id = $2 AND active = TRUE;
    `

	var t model.Template
	err := r.db.Master.QueryRowContext(ctx, query, id, tenantID).
		Scan(&t.ID, &t.TenantID, &t.Name, &t.Trigger, &t.Subject, &t.Body, &t.DelayHours, &t.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Template{}, ErrTemplateNotFound
		}

		return model.Template{}, fmt.Errorf("failed to get template: %w", err)
	}

	return t, nil
}

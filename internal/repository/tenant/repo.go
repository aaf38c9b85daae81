package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/reservio/booking-notifier/internal/model"
)

var ErrTenantNotFound = errors.New("tenant not found")

// Repository provides read-only access to tenant messaging settings.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new tenant settings repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetSettings returns the messaging feature flag and channel credentials
// for a tenant.
func (r *Repository) GetSettings(ctx context.Context, tenantID uuid.UUID) (model.TenantSettings, error) {
	query := `
		SELECT tenant_id, messaging_enabled, COALESCE(wa_instance_id, ''), COALESCE(wa_api_token, '')
		FROM tenant_settings
		WHERE tenant_id = $1;
    `

	var s model.TenantSettings
	err := r.db.Master.QueryRowContext(ctx, query, tenantID).
		Scan(&s.TenantID, &s.MessagingEnabled, &s.InstanceID, &s.APIToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TenantSettings{}, ErrTenantNotFound
		}

		return model.TenantSettings{}, fmt.Errorf("failed to get tenant settings: %w", err)
	}

	return s, nil
}

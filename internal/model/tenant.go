package model

import "github.com/google/uuid"

// TenantSettings holds the per-tenant messaging feature flag and channel
// credentials, consumed read-only.
type TenantSettings struct {
	TenantID         uuid.UUID `json:"tenant_id"`
	MessagingEnabled bool      `json:"messaging_enabled"`
	InstanceID       string    `json:"instance_id"`
	APIToken         string    `json:"api_token"`
}

// Package whatsapp is the boundary between the delivery path and the
// external messaging transport. It gates every send on the tenant's
// messaging feature flag before touching the network.
package whatsapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/reservio/booking-notifier/internal/model"
	"github.com/reservio/booking-notifier/internal/render"
)

var (
	ErrFeatureDisabled    = errors.New("feature_disabled")
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrTemplateNotFound   = errors.New("template_not_found")
)

//go:generate mockgen -source=adapter.go -destination=../../mocks/channel/whatsapp/mock.go -package=mocks

type tenantService interface {
	MessagingEnabled(ctx context.Context, strategy retry.Strategy, tenantID uuid.UUID) (bool, error)
	Credentials(ctx context.Context, tenantID uuid.UUID) (model.TenantSettings, error)
}

type templateRepository interface {
	GetActiveTemplateByID(ctx context.Context, tenantID, id uuid.UUID) (model.Template, error)
}

type transport interface {
	SendMessage(ctx context.Context, instanceID, apiToken, recipient, text string) (string, error)
}

// Result is the outcome of a successful send.
type Result struct {
	MessageID string
}

// Adapter performs the actual outbound send for one tenant-scoped message.
type Adapter struct {
	tenants   tenantService
	templates templateRepository
	transport transport
}

// NewAdapter creates a new channel adapter.
func NewAdapter(tenants tenantService, templates templateRepository, transport transport) *Adapter {
	return &Adapter{tenants: tenants, templates: templates, transport: transport}
}

// Send gates on the feature flag, resolves credentials, re-reads the
// template and dispatches the rendered body. The template lookup is
// independent of the scheduler's earlier read: a template deleted or
// deactivated since scheduling fails here instead of sending stale content.
func (a *Adapter) Send(ctx context.Context, strategy retry.Strategy, tenantID, templateID uuid.UUID, recipient string, vars map[string]string) (Result, error) {
	enabled, err := a.tenants.MessagingEnabled(ctx, strategy, tenantID)
	if err != nil {
		return Result{}, fmt.Errorf("check messaging flag: %w", err)
	}
	if !enabled {
		return Result{}, ErrFeatureDisabled
	}

	settings, err := a.tenants.Credentials(ctx, tenantID)
	if err != nil {
		return Result{}, fmt.Errorf("load credentials: %w", err)
	}
	if settings.InstanceID == "" || settings.APIToken == "" {
		return Result{}, ErrMissingCredentials
	}

	tpl, err := a.templates.GetActiveTemplateByID(ctx, tenantID, templateID)
	if err != nil {
		return Result{}, ErrTemplateNotFound
	}

	body := render.Render(tpl.Body, vars)

	messageID, err := a.transport.SendMessage(ctx, settings.InstanceID, settings.APIToken, recipient, body)
	if err != nil {
		return Result{}, fmt.Errorf("send message: %w", err)
	}

	return Result{MessageID: messageID}, nil
}

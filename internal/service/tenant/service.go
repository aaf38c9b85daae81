package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/reservio/booking-notifier/internal/model"
)

// flagTTL bounds how long a cached flag can lag the tenant_settings table.
// The table is written by an external system this service never observes,
// so the cache entry must expire on its own.
const flagTTL = time.Minute

//go:generate mockgen -source=service.go -destination=../../mocks/service/tenant/mock.go -package=mocks

type tenantRepository interface {
	GetSettings(context.Context, uuid.UUID) (model.TenantSettings, error)
}

type cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Defaults are the process-wide channel credentials used when a tenant has
// none of its own.
type Defaults struct {
	InstanceID string
	APIToken   string
}

// Service exposes tenant messaging settings with a cache-aside on the
// feature flag, which is read on every scheduling call and every send.
type Service struct {
	repo     tenantRepository
	cache    cache
	defaults Defaults
}

// NewService creates a new tenant settings service.
func NewService(repo tenantRepository, cache cache, defaults Defaults) *Service {
	return &Service{repo: repo, cache: cache, defaults: defaults}
}

func flagKey(tenantID uuid.UUID) string {
	return "tenant:" + tenantID.String() + ":messaging"
}

// MessagingEnabled reports whether the tenant's messaging feature flag is
// on. Cache failures fall through to the database. Entries expire after
// flagTTL, so a flag flipped off in the settings table stops scheduling
// and sending within a minute.
func (s *Service) MessagingEnabled(ctx context.Context, strategy retry.Strategy, tenantID uuid.UUID) (bool, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, flagKey(tenantID))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("tenant_id", tenantID.String()).Msg("failed to get messaging flag from cache")
	}

	if err == nil {
		return cached == "1", nil
	}

	settings, err := s.repo.GetSettings(ctx, tenantID)
	if err != nil {
		return false, fmt.Errorf("get tenant settings: %w", err)
	}

	value := "0"
	if settings.MessagingEnabled {
		value = "1"
	}

	if err := s.cache.Set(ctx, flagKey(tenantID), value, flagTTL).Err(); err != nil {
		zlog.Logger.Error().Err(err).Str("tenant_id", tenantID.String()).Msg("failed to cache messaging flag")
	}

	return settings.MessagingEnabled, nil
}

// Credentials returns the tenant's channel credentials, falling back to the
// process-wide defaults when the tenant has none configured.
func (s *Service) Credentials(ctx context.Context, tenantID uuid.UUID) (model.TenantSettings, error) {
	settings, err := s.repo.GetSettings(ctx, tenantID)
	if err != nil {
		return model.TenantSettings{}, fmt.Errorf("get tenant settings: %w", err)
	}

	if settings.InstanceID == "" {
		settings.InstanceID = s.defaults.InstanceID
		settings.APIToken = s.defaults.APIToken
	}

	return settings, nil
}

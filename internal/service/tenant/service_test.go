package tenant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	mocks "github.com/reservio/booking-notifier/internal/mocks/service/tenant"
	"github.com/reservio/booking-notifier/internal/model"
)

func setupService(t *testing.T) (*Service, *mocks.MocktenantRepository, *mocks.Mockcache) {
	zlog.Init()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMocktenantRepository(ctrl)
	cache := mocks.NewMockcache(ctrl)
	svc := NewService(repo, cache, Defaults{InstanceID: "default-instance", APIToken: "default-token"})

	return svc, repo, cache
}

func TestMessagingEnabled_CacheHit(t *testing.T) {
	svc, _, cache := setupService(t)

	tenantID := uuid.New()
	strategy := retry.Strategy{Attempts: 1}

	cache.EXPECT().GetWithRetry(gomock.Any(), strategy, "tenant:"+tenantID.String()+":messaging").Return("1", nil)

	enabled, err := svc.MessagingEnabled(context.Background(), strategy, tenantID)
	assert.NoError(t, err)
	assert.True(t, enabled)
}

func TestMessagingEnabled_CacheMiss(t *testing.T) {
	svc, repo, cache := setupService(t)

	tenantID := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	key := "tenant:" + tenantID.String() + ":messaging"

	cache.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("", redis.Nil)
	repo.EXPECT().GetSettings(gomock.Any(), tenantID).
		Return(model.TenantSettings{TenantID: tenantID, MessagingEnabled: false}, nil)
	cache.EXPECT().Set(gomock.Any(), key, "0", flagTTL).Return(redis.NewStatusCmd(context.Background()))

	enabled, err := svc.MessagingEnabled(context.Background(), strategy, tenantID)
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestMessagingEnabled_CachedWithExpiry(t *testing.T) {
	svc, repo, cache := setupService(t)

	tenantID := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	key := "tenant:" + tenantID.String() + ":messaging"

	// The flag lives in a table an external system writes, so every cache
	// entry must carry a bounded TTL.
	var gotTTL time.Duration
	cache.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("", redis.Nil)
	repo.EXPECT().GetSettings(gomock.Any(), tenantID).
		Return(model.TenantSettings{TenantID: tenantID, MessagingEnabled: true}, nil)
	cache.EXPECT().Set(gomock.Any(), key, "1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ interface{}, expiration time.Duration) *redis.StatusCmd {
			gotTTL = expiration
			return redis.NewStatusCmd(ctx)
		})

	enabled, err := svc.MessagingEnabled(context.Background(), strategy, tenantID)
	assert.NoError(t, err)
	assert.True(t, enabled)
	assert.Greater(t, gotTTL, time.Duration(0))
	assert.LessOrEqual(t, gotTTL, time.Minute)
}

func TestMessagingEnabled_FlagFlipObserved(t *testing.T) {
	svc, repo, cache := setupService(t)

	tenantID := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	key := "tenant:" + tenantID.String() + ":messaging"

	// First call caches enabled. After the entry expires, a flip to
	// disabled in the settings table is picked up.
	gomock.InOrder(
		cache.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("", redis.Nil),
		repo.EXPECT().GetSettings(gomock.Any(), tenantID).
			Return(model.TenantSettings{TenantID: tenantID, MessagingEnabled: true}, nil),
		cache.EXPECT().Set(gomock.Any(), key, "1", flagTTL).Return(redis.NewStatusCmd(context.Background())),

		cache.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("", redis.Nil),
		repo.EXPECT().GetSettings(gomock.Any(), tenantID).
			Return(model.TenantSettings{TenantID: tenantID, MessagingEnabled: false}, nil),
		cache.EXPECT().Set(gomock.Any(), key, "0", flagTTL).Return(redis.NewStatusCmd(context.Background())),
	)

	enabled, err := svc.MessagingEnabled(context.Background(), strategy, tenantID)
	assert.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = svc.MessagingEnabled(context.Background(), strategy, tenantID)
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestMessagingEnabled_CacheDown(t *testing.T) {
	svc, repo, cache := setupService(t)

	tenantID := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	key := "tenant:" + tenantID.String() + ":messaging"

	// An unreachable cache degrades to the database, never to an error.
	failedSet := redis.NewStatusCmd(context.Background())
	failedSet.SetErr(errors.New("connection refused"))

	cache.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("", errors.New("connection refused"))
	repo.EXPECT().GetSettings(gomock.Any(), tenantID).
		Return(model.TenantSettings{TenantID: tenantID, MessagingEnabled: true}, nil)
	cache.EXPECT().Set(gomock.Any(), key, "1", flagTTL).Return(failedSet)

	enabled, err := svc.MessagingEnabled(context.Background(), strategy, tenantID)
	assert.NoError(t, err)
	assert.True(t, enabled)
}

func TestCredentials(t *testing.T) {
	svc, repo, _ := setupService(t)

	tenantID := uuid.New()
	repo.EXPECT().GetSettings(gomock.Any(), tenantID).
		Return(model.TenantSettings{TenantID: tenantID, InstanceID: "7103", APIToken: "own-token"}, nil)

	settings, err := svc.Credentials(context.Background(), tenantID)
	assert.NoError(t, err)
	assert.Equal(t, "7103", settings.InstanceID)
	assert.Equal(t, "own-token", settings.APIToken)
}

func TestCredentials_DefaultsFallback(t *testing.T) {
	svc, repo, _ := setupService(t)

	tenantID := uuid.New()
	repo.EXPECT().GetSettings(gomock.Any(), tenantID).
		Return(model.TenantSettings{TenantID: tenantID}, nil)

	settings, err := svc.Credentials(context.Background(), tenantID)
	assert.NoError(t, err)
	assert.Equal(t, "default-instance", settings.InstanceID)
	assert.Equal(t, "default-token", settings.APIToken)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	goredis "github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/reservio/booking-notifier/internal/api/handlers/notification"
	"github.com/reservio/booking-notifier/internal/api/router"
	"github.com/reservio/booking-notifier/internal/api/server"
	"github.com/reservio/booking-notifier/internal/channel/whatsapp"
	"github.com/reservio/booking-notifier/internal/config"
	"github.com/reservio/booking-notifier/internal/phone"
	"github.com/reservio/booking-notifier/internal/rabbitmq/handlers/booking"
	"github.com/reservio/booking-notifier/internal/rabbitmq/queue"
	notifrepo "github.com/reservio/booking-notifier/internal/repository/notification"
	reservrepo "github.com/reservio/booking-notifier/internal/repository/reservation"
	templaterepo "github.com/reservio/booking-notifier/internal/repository/template"
	tenantrepo "github.com/reservio/booking-notifier/internal/repository/tenant"
	"github.com/reservio/booking-notifier/internal/service/delivery"
	"github.com/reservio/booking-notifier/internal/service/scheduler"
	tenantsvc "github.com/reservio/booking-notifier/internal/service/tenant"
	"github.com/reservio/booking-notifier/internal/worker"
	"github.com/reservio/booking-notifier/pkg/greenapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewBookingQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create booking queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	templates := templaterepo.NewRepository(db)
	notifications := notifrepo.NewRepository(db)
	reservations := reservrepo.NewRepository(db)
	tenants := tenantrepo.NewRepository(db)

	tenantService := tenantsvc.NewService(tenants, tenantCache{rdb}, tenantsvc.Defaults{
		InstanceID: cfg.WhatsApp.DefaultInstanceID,
		APIToken:   cfg.WhatsApp.DefaultAPIToken,
	})

	transport := greenapi.NewClient(cfg.WhatsApp.BaseURL)
	adapter := whatsapp.NewAdapter(tenantService, templates, transport)

	normalizer := phone.NewNormalizer(cfg.Phone.CountryCode)
	schedulerService := scheduler.NewService(templates, notifications, reservations, tenantService, normalizer)
	deliveryService := delivery.NewService(notifications, reservations, adapter, cfg.Delivery.BatchSize, cfg.Delivery.SendDelay)

	bookingHandler := booking.NewHandler(schedulerService)
	w := worker.NewWorker(q, bookingHandler, deliveryService)

	go w.Run(ctx, cfg.Retry, cfg.Delivery.PollInterval)

	notifHandler := notifhandler.NewHandler(deliveryService, notifications, val, cfg)
	r := router.New(notifHandler, cfg.Server.APIKey)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}

// tenantCache exposes the embedded go-redis Set (with expiration), which the
// wbf client's own TTL-less Set would otherwise shadow.
type tenantCache struct {
	*redis.Client
}

func (c tenantCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	return c.Client.Client.Set(ctx, key, value, expiration)
}

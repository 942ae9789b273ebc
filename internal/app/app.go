// Package app wires configuration into the concrete service graph shared by the
// API server and the one-shot sweep command.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"contractapi/internal/config"
	"contractapi/internal/database"
	"contractapi/internal/database/migration"
	"contractapi/internal/extract"
	handlers "contractapi/internal/http/handler"
	"contractapi/internal/lock"
	"contractapi/internal/messaging"
	"contractapi/internal/metrics"
	"contractapi/internal/repository/postgres"
	"contractapi/internal/service"
	"contractapi/internal/storage"
)

// App owns the long-lived clients and the services built on them.
type App struct {
	DB       *sql.DB
	Metrics  *metrics.Metrics
	Services handlers.Services

	publisher messaging.Publisher
	redis     *redis.Client
	log       *zap.Logger
}

// New connects to every backing service, migrates the schema and builds the services.
// reg may be nil, in which case no domain metrics are recorded.
func New(ctx context.Context, cfg *config.AppConfig, log *zap.Logger, reg prometheus.Registerer) (*App, error) {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	var m *metrics.Metrics
	if reg != nil {
		if m, err = metrics.New(reg); err != nil {
			db.Close()
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	a := &App{DB: db, Metrics: m, log: log}

	var locker lock.Locker = lock.NoopLocker{}
	if cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		locker = lock.NewRedisLocker(a.redis)
		log.Info("sweep lock backed by redis", zap.String("addr", cfg.Redis.Addr))
	}

	a.publisher = messaging.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	sms := messaging.NewSMSSender(cfg.Twilio, log)
	mailer := messaging.NewResendMailer(cfg.Email, cfg.AppURL, cfg.AppName, cfg.IsDevelopment(), log)

	files := postgres.NewFilePostgres(db)
	contracts := postgres.NewContractPostgres(db)
	users := postgres.NewUserPostgres(db)
	notifications := postgres.NewNotificationPostgres(db)
	activityRepo := postgres.NewActivityPostgres(db)
	invitations := postgres.NewInvitationPostgres(db)
	reports := postgres.NewReportPostgres(db)

	activitySvc := service.NewActivityService(activityRepo, log)
	notificationSvc := service.NewNotificationService(notifications, sms, a.publisher, cfg.Twilio.DefaultRegion, log, m)

	a.Services = handlers.Services{
		Files: service.NewFileService(service.FileServiceDeps{
			Store:         store,
			Files:         files,
			Contracts:     contracts,
			Users:         users,
			Extractor:     extract.NewClient(cfg.Extraction),
			Notifications: notificationSvc,
			Activities:    activitySvc,
			PresignExpiry: cfg.MinIO.PresignExpiry,
			Log:           log,
			Metrics:       m,
		}),
		Contracts:     service.NewContractService(contracts, files, users, notificationSvc, activitySvc, log, m),
		Sweep:         service.NewExpirySweep(contracts, users, notifications, notificationSvc, locker, log, m),
		Notifications: notificationSvc,
		Activities:    activitySvc,
		Invitations:   service.NewInvitationService(invitations, users, mailer, activitySvc, cfg.InvitationTTL, log, m),
		Reports:       service.NewReportService(store, reports),
	}
	return a, nil
}

// Close releases the clients in reverse order of creation.
func (a *App) Close() {
	if err := a.publisher.Close(); err != nil {
		a.log.Warn("close event publisher", zap.Error(err))
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", zap.Error(err))
		}
	}
	if err := a.DB.Close(); err != nil {
		a.log.Warn("close database", zap.Error(err))
	}
}
